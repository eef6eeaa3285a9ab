package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DeliveryStatus is the shipment lifecycle stage reported by the shop backend.
type DeliveryStatus int

const (
	DeliveryPrepared DeliveryStatus = iota
	DeliveryInTransit
	DeliveryDelivered
	DeliveryFailed
	DeliveryCancelled
)

// PaymentStatus is the payment capture stage reported by the shop backend.
type PaymentStatus int

const (
	PaymentUnpaid PaymentStatus = iota
	PaymentPaid
	PaymentFailed
)

// ProductType distinguishes the two product families an order line can hold.
type ProductType int

// ProductCharm marks a charm line; every other value is a bracelet.
const ProductCharm ProductType = 1

const unknownLabel = "Không xác định"

var deliveryLabels = []string{
	"Đã chuẩn bị",
	"Đang giao",
	"Đã giao",
	"Giao thất bại",
	"Đã hủy",
}

var paymentLabels = []string{
	"Chưa thanh toán",
	"Đã thanh toán",
	"Thanh toán thất bại",
}

// Valid reports whether s is one of the known delivery stages.
func (s DeliveryStatus) Valid() bool {
	return s >= DeliveryPrepared && s <= DeliveryCancelled
}

// Label returns the admin-facing label, or "Không xác định" for unknown values.
func (s DeliveryStatus) Label() string {
	if !s.Valid() {
		return unknownLabel
	}
	return deliveryLabels[s]
}

func (s *DeliveryStatus) UnmarshalJSON(b []byte) error {
	v, err := decodeStatus(b)
	if err != nil {
		return fmt.Errorf("delivery status: %w", err)
	}
	*s = DeliveryStatus(v)
	return nil
}

// Valid reports whether s is one of the known payment stages.
func (s PaymentStatus) Valid() bool {
	return s >= PaymentUnpaid && s <= PaymentFailed
}

func (s PaymentStatus) Label() string {
	if !s.Valid() {
		return unknownLabel
	}
	return paymentLabels[s]
}

func (s *PaymentStatus) UnmarshalJSON(b []byte) error {
	v, err := decodeStatus(b)
	if err != nil {
		return fmt.Errorf("payment status: %w", err)
	}
	*s = PaymentStatus(v)
	return nil
}

func (t ProductType) Label() string {
	if t == ProductCharm {
		return "Charm"
	}
	return "Bracelet"
}

// decodeStatus accepts a JSON number, a numeric string or null. Missing and null map to 0.
func decodeStatus(b []byte) (int, error) {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return 0, nil
	}
	raw = strings.TrimSpace(strings.Trim(raw, `"`))
	if raw == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", raw)
	}
	return int(f), nil
}

// DeliveryStatuses lists every delivery stage in selector order.
func DeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryPrepared, DeliveryInTransit, DeliveryDelivered, DeliveryFailed, DeliveryCancelled}
}

// PaymentStatuses lists every payment stage in selector order.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentUnpaid, PaymentPaid, PaymentFailed}
}

type CartItemRequest struct {
	ProductID   int64       `json:"productId"`
	Quantity    int         `json:"quantity"`
	ProductType ProductType `json:"productType"`
}

type Order struct {
	ID               int64             `json:"id"`
	UserName         string            `json:"userName"`
	Address          string            `json:"address"`
	PhoneNumber      string            `json:"phoneNumber"`
	TotalAmount      decimal.Decimal   `json:"totalAmount"`
	PaymentMethod    string            `json:"paymentMethod"`
	CartItemRequests []CartItemRequest `json:"cartItemRequests"`
	DeliveryStatus   DeliveryStatus    `json:"deliveryStatus"`
	PaymentStatus    PaymentStatus     `json:"paymentStatus"`
	ShipperID        *int64            `json:"shipperId,omitempty"`
	OrderDate        Timestamp         `json:"orderDate"`
	AmountDiscount   decimal.Decimal   `json:"amountDiscount"`
	Note             string            `json:"note"`
}

// NeedsAttention reports whether the order is already delivered or paid.
// Such orders are listed first for review.
func (o Order) NeedsAttention() bool {
	return o.DeliveryStatus == DeliveryDelivered || o.PaymentStatus == PaymentPaid
}

// Clone returns a deep copy so callers can hold a snapshot of the order.
func (o Order) Clone() Order {
	c := o
	if o.CartItemRequests != nil {
		c.CartItemRequests = append([]CartItemRequest(nil), o.CartItemRequests...)
	}
	if o.ShipperID != nil {
		id := *o.ShipperID
		c.ShipperID = &id
	}
	return c
}

// StatusUpdate is the body of a status transition. The backend requires both fields on every call.
type StatusUpdate struct {
	DeliveryStatus DeliveryStatus `json:"deliveryStatus"`
	PaymentStatus  PaymentStatus  `json:"paymentStatus"`
}
