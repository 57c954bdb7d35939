package configs

import (
	"fmt"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the database chosen by DB_DRIVER. The handle is returned to
// the caller and passed down explicitly; nothing here keeps package state.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite", "":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Table{},
		&entity.MenuCategory{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
