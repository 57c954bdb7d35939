package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_restaurant_table" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	TableNumber string `gorm:"not null;uniqueIndex:idx_restaurant_table" json:"table_number"`
	QRCodeURL   string `json:"qr_code_url"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Orders []Order `gorm:"foreignKey:TableID" json:"-"`
}
