package entity

import (
	"gorm.io/gorm"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleStaff      = "STAFF"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"not null;default:STAFF" json:"role"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsBlocked    bool   `gorm:"default:false" json:"is_blocked"`

	// nil for SUPER_ADMIN (platform operator, no tenant)
	RestaurantID *uint       `json:"restaurant_id"`
	Restaurant   *Restaurant `json:"-"`
}
