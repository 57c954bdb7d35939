package entity

import (
	"gorm.io/gorm"
)

const (
	PlanFree    = "FREE"
	PlanPremium = "PREMIUM"
)

type Restaurant struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	// owner user id; NULL briefly during provisioning, back-patched in the
	// same transaction
	OwnerID *uint `json:"owner_id"`

	Plan           string `gorm:"not null;default:FREE" json:"plan"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	WhatsappNumber string `json:"whatsapp_number"`
	LogoURL        string `json:"logo_url"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	Tables     []Table        `json:"-"`
	Categories []MenuCategory `json:"-"`
	Items      []MenuItem     `json:"-"`
	Orders     []Order        `json:"-"`
}
