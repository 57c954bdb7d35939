package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`

	// snapshot of the menu price at order time, minor units; historical
	// orders keep their value when the catalog changes
	Price int64 `gorm:"not null" json:"price"`

	Notes string `json:"notes"`
}
