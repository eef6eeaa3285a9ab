// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/RaikyD/charms-admin/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// OrdersGateway is the slice of the shop backend the order console needs.
type OrdersGateway interface {
	GetAllOrders(ctx context.Context) ([]domain.Order, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	CreateAndAssignDelivery(ctx context.Context, shipperID int64, orderIDs []int64) error
	UpdateDeliveryStatus(ctx context.Context, orderID int64, upd domain.StatusUpdate) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

type RevenueGateway interface {
	GetRevenueByPeriod(ctx context.Context, period domain.Period) (*domain.RevenueReport, error)
}

type InventoryGateway interface {
	GetInventory(ctx context.Context, t domain.StockType) ([]domain.InventoryItem, error)
	AddStock(ctx context.Context, t domain.StockType, productID int64, quantity int) error
	Distribute(ctx context.Context, t domain.StockType, productID int64, quantity int) error
	UpdateQuantity(ctx context.Context, t domain.StockType, productID int64, quantity int) error
}

type ReviewsGateway interface {
	GetAllReviews(ctx context.Context) ([]domain.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

type CharmsGateway interface {
	GetAllCharms(ctx context.Context) ([]domain.Charm, error)
	DeleteCharm(ctx context.Context, id int64) error
}

// Notifier receives the outcome of every console operation.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type RevenueCache interface {
	GetReport(ctx context.Context, period domain.Period) (*domain.RevenueReport, error)
	SetReport(ctx context.Context, period domain.Period, report *domain.RevenueReport) error
}
