package application

import (
	"github.com/RaikyD/charms-admin/internal/domain"
	"github.com/RaikyD/charms-admin/internal/format"
	"github.com/RaikyD/charms-admin/internal/pagination"
)

// OrderRow is one line of the order table, rendered from the mirror rather
// than from the order's own status fields.
type OrderRow struct {
	ID             int64                 `json:"id"`
	Address        string                `json:"address"`
	PhoneNumber    string                `json:"phoneNumber"`
	Total          string                `json:"total"`
	PaymentMethod  string                `json:"paymentMethod"`
	Items          []ItemLine            `json:"items"`
	ShipperID      *int64                `json:"shipperId,omitempty"`
	DeliveryStatus domain.DeliveryStatus `json:"deliveryStatus"`
	DeliveryLabel  string                `json:"deliveryLabel"`
	PaymentStatus  domain.PaymentStatus  `json:"paymentStatus"`
	PaymentLabel   string                `json:"paymentLabel"`
	Busy           bool                  `json:"busy"`
}

type ItemLine struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Kind      string `json:"kind"`
}

// OrderDetail is the read-only detail view of one order.
type OrderDetail struct {
	ID            int64      `json:"id"`
	UserName      string     `json:"userName"`
	Address       string     `json:"address"`
	PhoneNumber   string     `json:"phoneNumber"`
	OrderDate     string     `json:"orderDate"`
	Note          string     `json:"note"`
	PaymentMethod string     `json:"paymentMethod"`
	Total         string     `json:"total"`
	Discount      string     `json:"discount"`
	DeliveryLabel string     `json:"deliveryLabel"`
	Items         []ItemLine `json:"items"`
}

func itemLines(items []domain.CartItemRequest) []ItemLine {
	lines := make([]ItemLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, ItemLine{ProductID: it.ProductID, Quantity: it.Quantity, Kind: it.ProductType.Label()})
	}
	return lines
}

// NewOrderDetail renders an order snapshot. The delivery label comes from the
// snapshot itself, not from the mirror.
func NewOrderDetail(o domain.Order) OrderDetail {
	return OrderDetail{
		ID:            o.ID,
		UserName:      o.UserName,
		Address:       o.Address,
		PhoneNumber:   o.PhoneNumber,
		OrderDate:     format.DateTime(o.OrderDate.Time),
		Note:          o.Note,
		PaymentMethod: o.PaymentMethod,
		Total:         format.VND(o.TotalAmount),
		Discount:      format.Number(o.AmountDiscount),
		DeliveryLabel: o.DeliveryStatus.Label(),
		Items:         itemLines(o.CartItemRequests),
	}
}

// Orders returns a copy of the collection in display order.
func (c *OrdersConsole) Orders() []domain.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Order, 0, len(c.orders))
	for _, o := range c.orders {
		out = append(out, o.Clone())
	}
	return out
}

func (c *OrdersConsole) Shippers() []domain.Shipper {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Shipper(nil), c.shippers...)
}

func (c *OrdersConsole) DeliveryStatus(orderID int64) domain.DeliveryStatus {
	return c.mirror.Delivery(orderID)
}

func (c *OrdersConsole) PaymentStatus(orderID int64) domain.PaymentStatus {
	return c.mirror.Payment(orderID)
}

// Busy reports whether a mutation for the order is in flight.
func (c *OrdersConsole) Busy(orderID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.busy[orderID]
}

func (c *OrdersConsole) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// CurrentPage renders the rows of the current page.
func (c *OrdersConsole) CurrentPage() pagination.View[OrderRow] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return pagination.Map(pagination.Render(c.pager, c.orders), c.rowLocked)
}

func (c *OrdersConsole) rowLocked(o domain.Order) OrderRow {
	delivery := c.mirror.Delivery(o.ID)
	payment := c.mirror.Payment(o.ID)
	row := OrderRow{
		ID:             o.ID,
		Address:        o.Address,
		PhoneNumber:    o.PhoneNumber,
		Total:          format.VND(o.TotalAmount),
		PaymentMethod:  o.PaymentMethod,
		Items:          itemLines(o.CartItemRequests),
		DeliveryStatus: delivery,
		DeliveryLabel:  delivery.Label(),
		PaymentStatus:  payment,
		PaymentLabel:   payment.Label(),
		Busy:           c.busy[o.ID],
	}
	if o.ShipperID != nil {
		id := *o.ShipperID
		row.ShipperID = &id
	}
	return row
}

// SetPage moves to page if it exists; out-of-range requests are ignored.
func (c *OrdersConsole) SetPage(page int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.SetPage(page, len(c.orders))
}

func (c *OrdersConsole) NextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Next(len(c.orders))
}

func (c *OrdersConsole) PrevPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Prev(len(c.orders))
}

// Select opens the detail view with a snapshot of the order as it is now.
// Later changes to the collection do not show up in the snapshot.
func (c *OrdersConsole) Select(orderID int64) (domain.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.orders {
		if o.ID == orderID {
			snapshot := o.Clone()
			c.selected = &snapshot
			return snapshot.Clone(), true
		}
	}
	return domain.Order{}, false
}

func (c *OrdersConsole) Detail() (domain.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected == nil {
		return domain.Order{}, false
	}
	return c.selected.Clone(), true
}

func (c *OrdersConsole) CloseDetail() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
}
