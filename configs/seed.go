package configs

import (
	"log"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin creates the platform operator account on first boot.
func SeedSuperAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding super admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("super admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		FirstName:    "Super",
		LastName:     "Admin",
		Role:         entity.RoleSuperAdmin,
	}
	return db.Create(&admin).Error
}
