package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	CategoryID uint         `gorm:"not null;index" json:"category_id"`
	Category   MenuCategory `gorm:"foreignKey:CategoryID" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// minor units (tiyn/cents); never a float
	Price int64 `gorm:"not null" json:"price"`

	ImageURL    string `json:"image_url"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	OrderItems []OrderItem `gorm:"foreignKey:MenuItemID" json:"-"`
}
