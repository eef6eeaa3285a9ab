package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/logger"
	"github.com/RaikyD/charms-admin/internal/pagination"
	"github.com/RaikyD/charms-admin/internal/ports"
)

// ErrOrderBusy is returned when another assignment or status update for the
// same order has not finished yet.
var ErrOrderBusy = errors.New("order has an operation in flight")

const (
	msgLoadOrdersFailed     = "Không thể tải đơn hàng"
	msgAssignSucceeded      = "Đã gán đơn cho shipper!"
	msgAssignFailed         = "Không thể gán đơn!"
	msgDeliveryUpdated      = "Cập nhật trạng thái giao hàng thành công!"
	msgDeliveryUpdateFailed = "Không thể cập nhật trạng thái giao hàng!"
	msgPaymentUpdated       = "Cập nhật trạng thái thanh toán thành công!"
	msgPaymentUpdateFailed  = "Không thể cập nhật trạng thái thanh toán!"
	msgOrderDeleted         = "Đã xóa đơn!"
	msgDeleteFailed         = "Không thể xóa đơn!"
)

// OrdersConsole is the view model of the order management screen: the loaded
// orders, the shipper list, the status mirror, per-order busy flags, the
// current page and the order opened in the detail view.
type OrdersConsole struct {
	gw       ports.OrdersGateway
	notifier ports.Notifier
	mirror   *StatusMirror

	mu       sync.RWMutex
	orders   []domain.Order
	shippers []domain.Shipper
	busy     map[int64]bool
	pager    *pagination.Pager
	selected *domain.Order
	loading  bool
	loadGen  uint64
}

func NewOrdersConsole(gw ports.OrdersGateway, notifier ports.Notifier, pageSize int) *OrdersConsole {
	return &OrdersConsole{
		gw:       gw,
		notifier: notifier,
		mirror:   NewStatusMirror(),
		orders:   []domain.Order{},
		shippers: []domain.Shipper{},
		busy:     make(map[int64]bool),
		pager:    pagination.NewPager(pageSize),
	}
}

// PrioritizeOrders moves delivered or paid orders to the front. The relative
// order inside both groups is kept.
func PrioritizeOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.NeedsAttention() {
			out = append(out, o)
		}
	}
	for _, o := range orders {
		if !o.NeedsAttention() {
			out = append(out, o)
		}
	}
	return out
}

// ShippersFromUsers keeps the shipper accounts of a user list.
func ShippersFromUsers(users []domain.User) []domain.Shipper {
	shippers := make([]domain.Shipper, 0, len(users))
	for _, u := range users {
		if u.Role != domain.ShipperRole {
			continue
		}
		shippers = append(shippers, domain.Shipper{ID: u.ID, Name: u.DisplayName()})
	}
	return shippers
}

// Refresh loads orders and shippers concurrently, as the screen does on open.
// Only the order fetch can fail; shippers always fall back to the defaults.
func (c *OrdersConsole) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := c.LoadOrders(ctx)
		return err
	})
	g.Go(func() error {
		c.LoadShippers(ctx)
		return nil
	})
	return g.Wait()
}

// LoadOrders replaces the collection and both status maps with a fresh fetch.
// On failure the collection is emptied rather than kept stale. When loads
// overlap only the most recently started one is applied.
func (c *OrdersConsole) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	c.mu.Lock()
	c.loadGen++
	gen := c.loadGen
	c.loading = true
	c.mu.Unlock()

	fetched, err := c.gw.GetAllOrders(ctx)
	if err != nil {
		c.mu.Lock()
		superseded := gen != c.loadGen
		if !superseded {
			c.orders = []domain.Order{}
			c.mirror.Replace(nil, nil)
			c.pager.Clamp(0)
			c.loading = false
		}
		c.mu.Unlock()

		logger.Warn("load orders failed", "err", err, "superseded", superseded)
		if !superseded {
			c.notify(ctx, domain.LevelError, domain.ActionLoadOrders, 0, msgLoadOrdersFailed)
		}
		return nil, fmt.Errorf("load orders: %w", err)
	}

	sorted := PrioritizeOrders(fetched)
	delivery := make(map[int64]domain.DeliveryStatus, len(fetched))
	payment := make(map[int64]domain.PaymentStatus, len(fetched))
	for _, o := range fetched {
		delivery[o.ID] = o.DeliveryStatus
		payment[o.ID] = o.PaymentStatus
	}

	c.mu.Lock()
	if gen != c.loadGen {
		c.mu.Unlock()
		logger.Debug("stale order load dropped", "count", len(sorted))
		return c.Orders(), nil
	}
	c.orders = sorted
	c.mirror.Replace(delivery, payment)
	c.pager.Clamp(len(sorted))
	c.loading = false
	c.mu.Unlock()

	logger.Debug("orders loaded", "count", len(sorted))
	return c.Orders(), nil
}

// LoadShippers fetches the shipper accounts. A failed fetch, an empty user
// list or a list without shippers all yield DefaultShippers.
func (c *OrdersConsole) LoadShippers(ctx context.Context) []domain.Shipper {
	var shippers []domain.Shipper
	users, err := c.gw.GetAllUsers(ctx)
	switch {
	case err != nil:
		logger.Warn("load shippers failed, using defaults", "err", err)
		shippers = domain.DefaultShippers()
	case len(users) == 0:
		shippers = domain.DefaultShippers()
	default:
		shippers = ShippersFromUsers(users)
		if len(shippers) == 0 {
			shippers = domain.DefaultShippers()
		}
	}

	c.mu.Lock()
	c.shippers = shippers
	c.mu.Unlock()
	return c.Shippers()
}

// Assign hands an order to a shipper in a new delivery batch. A confirmed
// assignment restarts the order's lifecycle: both mirrored statuses go back to 0.
// The remote call runs to completion even if ctx is cancelled.
func (c *OrdersConsole) Assign(ctx context.Context, orderID, shipperID int64) error {
	if err := c.acquire(orderID); err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)

	err := c.gw.CreateAndAssignDelivery(ctx, shipperID, []int64{orderID})
	if err == nil {
		c.mu.Lock()
		for i := range c.orders {
			if c.orders[i].ID == orderID {
				id := shipperID
				c.orders[i].ShipperID = &id
			}
		}
		c.mirror.Reset(orderID)
		c.mu.Unlock()
	}
	c.release(orderID)

	if err != nil {
		logger.Warn("assign shipper failed", "order_id", orderID, "shipper_id", shipperID, "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionAssignShipper, orderID, msgAssignFailed)
		return fmt.Errorf("assign order %d: %w", orderID, err)
	}
	logger.Info("order assigned", "order_id", orderID, "shipper_id", shipperID)
	c.notify(ctx, domain.LevelSuccess, domain.ActionAssignShipper, orderID, msgAssignSucceeded)
	return nil
}

// UpdateDelivery sends a delivery transition together with the mirrored payment status.
func (c *OrdersConsole) UpdateDelivery(ctx context.Context, orderID int64, status domain.DeliveryStatus) error {
	if err := c.acquire(orderID); err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)

	upd := domain.StatusUpdate{DeliveryStatus: status, PaymentStatus: c.mirror.Payment(orderID)}
	err := c.gw.UpdateDeliveryStatus(ctx, orderID, upd)
	if err == nil {
		c.mirror.SetDelivery(orderID, status)
	}
	c.release(orderID)

	if err != nil {
		logger.Warn("update delivery status failed", "order_id", orderID, "status", status, "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionUpdateDelivery, orderID, msgDeliveryUpdateFailed)
		return fmt.Errorf("update delivery of order %d: %w", orderID, err)
	}
	c.notify(ctx, domain.LevelSuccess, domain.ActionUpdateDelivery, orderID, msgDeliveryUpdated)
	return nil
}

// UpdatePayment sends a payment transition together with the mirrored delivery status.
func (c *OrdersConsole) UpdatePayment(ctx context.Context, orderID int64, status domain.PaymentStatus) error {
	if err := c.acquire(orderID); err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)

	upd := domain.StatusUpdate{DeliveryStatus: c.mirror.Delivery(orderID), PaymentStatus: status}
	err := c.gw.UpdateDeliveryStatus(ctx, orderID, upd)
	if err == nil {
		c.mirror.SetPayment(orderID, status)
	}
	c.release(orderID)

	if err != nil {
		logger.Warn("update payment status failed", "order_id", orderID, "status", status, "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionUpdatePayment, orderID, msgPaymentUpdateFailed)
		return fmt.Errorf("update payment of order %d: %w", orderID, err)
	}
	c.notify(ctx, domain.LevelSuccess, domain.ActionUpdatePayment, orderID, msgPaymentUpdated)
	return nil
}

// Delete removes an order remotely, drops it locally and reloads the collection.
// A failed reload after a confirmed delete is reported but does not fail Delete.
func (c *OrdersConsole) Delete(ctx context.Context, orderID int64) error {
	ctx = context.WithoutCancel(ctx)
	if err := c.gw.DeleteOrder(ctx, orderID); err != nil {
		logger.Warn("delete order failed", "order_id", orderID, "err", err)
		c.notify(ctx, domain.LevelError, domain.ActionDeleteOrder, orderID, msgDeleteFailed)
		return fmt.Errorf("delete order %d: %w", orderID, err)
	}

	c.mu.Lock()
	kept := c.orders[:0:0]
	for _, o := range c.orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	c.orders = kept
	c.mirror.Forget(orderID)
	c.pager.Clamp(len(kept))
	c.mu.Unlock()

	c.notify(ctx, domain.LevelSuccess, domain.ActionDeleteOrder, orderID, msgOrderDeleted)

	if _, err := c.LoadOrders(ctx); err != nil {
		logger.Warn("reload after delete failed", "order_id", orderID, "err", err)
	}
	return nil
}

func (c *OrdersConsole) acquire(orderID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy[orderID] {
		return fmt.Errorf("order %d: %w", orderID, ErrOrderBusy)
	}
	c.busy[orderID] = true
	return nil
}

func (c *OrdersConsole) release(orderID int64) {
	c.mu.Lock()
	delete(c.busy, orderID)
	c.mu.Unlock()
}

func (c *OrdersConsole) notify(ctx context.Context, level domain.Level, action domain.Action, orderID int64, msg string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(ctx, domain.NewNotification(level, action, orderID, msg))
}
