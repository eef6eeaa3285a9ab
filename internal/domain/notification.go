package domain

import (
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Action names the console operation a notification reports on.
type Action string

const (
	ActionLoadOrders     Action = "load_orders"
	ActionAssignShipper  Action = "assign_shipper"
	ActionUpdateDelivery Action = "update_delivery"
	ActionUpdatePayment  Action = "update_payment"
	ActionDeleteOrder    Action = "delete_order"
	ActionLoadRevenue    Action = "load_revenue"
	ActionLoadStock      Action = "load_stock"
	ActionAddStock       Action = "add_stock"
	ActionDistribute     Action = "distribute_stock"
	ActionUpdateQuantity Action = "update_quantity"
	ActionLoadReviews    Action = "load_reviews"
	ActionDeleteReview   Action = "delete_review"
	ActionLoadCharms     Action = "load_charms"
	ActionDeleteCharm    Action = "delete_charm"
)

// Notification is the user-facing outcome of a console operation.
type Notification struct {
	ID       uuid.UUID `json:"id"`
	Level    Level     `json:"level"`
	Action   Action    `json:"action"`
	TargetID int64     `json:"targetId,omitempty"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

func NewNotification(level Level, action Action, targetID int64, message string) Notification {
	return Notification{
		ID:       uuid.New(),
		Level:    level,
		Action:   action,
		TargetID: targetID,
		Message:  message,
		At:       time.Now().UTC(),
	}
}
