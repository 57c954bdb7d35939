package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_restaurant_category" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	Name      string `gorm:"not null;uniqueIndex:idx_restaurant_category" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
