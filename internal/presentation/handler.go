package presentation

import (
	"context"
	"errors"
	"net/http"

	"github.com/RaikyD/charms-admin/internal/application"
	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/gateway"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/notify"
	"github.com/RaikyD/charms-admin/internal/presentation/helpers"
	"github.com/go-chi/chi/v5"
)

const defaultNotificationLimit = 20

// HistoryReader lists persisted notifications, newest first.
type HistoryReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Notification, error)
}

// AdminHandler exposes the admin consoles over HTTP. History is optional.
type AdminHandler struct {
	orders  *application.OrdersConsole
	revenue *application.RevenueView
	stock   *application.StockConsole
	reviews *application.ReviewsConsole
	charms  *application.CharmsConsole
	journal *notify.Journal
	history HistoryReader
}

func NewAdminHandler(
	orders *application.OrdersConsole,
	revenue *application.RevenueView,
	stock *application.StockConsole,
	reviews *application.ReviewsConsole,
	charms *application.CharmsConsole,
	journal *notify.Journal,
	history HistoryReader,
) *AdminHandler {
	return &AdminHandler{
		orders:  orders,
		revenue: revenue,
		stock:   stock,
		reviews: reviews,
		charms:  charms,
		journal: journal,
		history: history,
	}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/orders", h.ListOrders)
		r.Post("/orders", h.ReloadOrders)
		r.Put("/orders", h.ChangeOrdersPage)
		r.Get("/orders/selection", h.GetSelection)
		r.Delete("/orders/selection", h.CloseSelection)
		r.Get("/orders/{id}", h.SelectOrder)
		r.Delete("/orders/{id}", h.DeleteOrder)
		r.Post("/orders/{id}/shipper", h.AssignShipper)
		r.Put("/orders/{id}/delivery-status", h.UpdateDeliveryStatus)
		r.Put("/orders/{id}/payment-status", h.UpdatePaymentStatus)
		r.Get("/shippers", h.ListShippers)

		r.Get("/dashboard/revenue", h.GetRevenue)

		r.Get("/stock", h.ListStock)
		r.Post("/stock", h.ReloadStock)
		r.Put("/stock", h.ChangeStockPage)
		r.Post("/stock/{id}/add", h.AddStock)
		r.Put("/stock/{id}/distribute", h.DistributeStock)
		r.Put("/stock/{id}/quantity", h.UpdateStockQuantity)

		r.Get("/reviews", h.ListReviews)
		r.Post("/reviews", h.ReloadReviews)
		r.Delete("/reviews/{id}", h.DeleteReview)

		r.Get("/charms", h.ListCharms)
		r.Post("/charms", h.ReloadCharms)
		r.Put("/charms", h.ChangeCharmsPage)
		r.Put("/charms/filter", h.FilterCharms)
		r.Delete("/charms/{id}", h.DeleteCharm)

		r.Get("/notifications", h.ListNotifications)
		r.Get("/notifications/history", h.NotificationHistory)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// writeConsoleError maps console errors to HTTP statuses. The admin-facing
// text travels through the notification journal, not the error body.
func (h *AdminHandler) writeConsoleError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrOrderBusy):
		status = http.StatusConflict
	case errors.Is(err, application.ErrInvalidQuantity),
		errors.Is(err, application.ErrInvalidPeriod),
		errors.Is(err, application.ErrInvalidCharmFilter):
		status = http.StatusBadRequest
	case errors.Is(err, gateway.ErrGatewayFailure):
		status = http.StatusBadGateway
	default:
		logger.Error("console operation failed", "err", err)
	}
	helpers.HttpError(w, status, err.Error())
}
