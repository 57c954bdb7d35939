package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusNew       = "NEW"
	OrderStatusPreparing = "PREPARING"
	OrderStatusServed    = "SERVED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

const (
	OrderTypeDineIn   = "DINE_IN"
	OrderTypeDelivery = "DELIVERY"
)

// ActiveOrderStatuses are the non-terminal statuses shown on the staff board.
var ActiveOrderStatuses = []string{OrderStatusNew, OrderStatusPreparing, OrderStatusServed}

type Order struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	// nil for DELIVERY orders
	TableID *uint  `gorm:"index" json:"table_id"`
	Table   *Table `json:"-"`

	Status    string `gorm:"not null;default:NEW;index" json:"status"`
	OrderType string `gorm:"not null;default:DINE_IN" json:"order_type"`

	// minor units; computed once at creation from snapshot prices
	TotalAmount int64 `gorm:"not null" json:"total_amount"`

	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
}

func IsTerminalStatus(s string) bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusServed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
