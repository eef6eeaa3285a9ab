package application

import (
	"sync"

	"github.com/RaikyD/charms-admin/internal/domain"
)

// StatusMirror is the local copy of each order's delivery and payment status.
// It is what the console renders from, and it is only written after the
// backend has confirmed a change.
type StatusMirror struct {
	mu       sync.RWMutex
	delivery map[int64]domain.DeliveryStatus
	payment  map[int64]domain.PaymentStatus
}

func NewStatusMirror() *StatusMirror {
	return &StatusMirror{
		delivery: make(map[int64]domain.DeliveryStatus),
		payment:  make(map[int64]domain.PaymentStatus),
	}
}

// Delivery returns the mirrored delivery status, Prepared when the id is unknown.
func (m *StatusMirror) Delivery(orderID int64) domain.DeliveryStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.delivery[orderID]
}

// Payment returns the mirrored payment status, Unpaid when the id is unknown.
func (m *StatusMirror) Payment(orderID int64) domain.PaymentStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payment[orderID]
}

func (m *StatusMirror) SetDelivery(orderID int64, s domain.DeliveryStatus) {
	m.mu.Lock()
	m.delivery[orderID] = s
	m.mu.Unlock()
}

func (m *StatusMirror) SetPayment(orderID int64, s domain.PaymentStatus) {
	m.mu.Lock()
	m.payment[orderID] = s
	m.mu.Unlock()
}

// Reset puts both statuses of an order back to Prepared/Unpaid.
func (m *StatusMirror) Reset(orderID int64) {
	m.mu.Lock()
	m.delivery[orderID] = domain.DeliveryPrepared
	m.payment[orderID] = domain.PaymentUnpaid
	m.mu.Unlock()
}

func (m *StatusMirror) Forget(orderID int64) {
	m.mu.Lock()
	delete(m.delivery, orderID)
	delete(m.payment, orderID)
	m.mu.Unlock()
}

// Replace swaps in freshly derived maps. The mirror takes ownership of them.
func (m *StatusMirror) Replace(delivery map[int64]domain.DeliveryStatus, payment map[int64]domain.PaymentStatus) {
	if delivery == nil {
		delivery = make(map[int64]domain.DeliveryStatus)
	}
	if payment == nil {
		payment = make(map[int64]domain.PaymentStatus)
	}
	m.mu.Lock()
	m.delivery = delivery
	m.payment = payment
	m.mu.Unlock()
}

func (m *StatusMirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.delivery)
}
