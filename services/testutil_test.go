package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database per test. The shared
// cache keeps the schema alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Table{},
		&entity.MenuCategory{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, plan string) *entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{Name: "Test Cafe", Plan: plan, WhatsappNumber: "77001234567", IsActive: true}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func seedTable(t *testing.T, db *gorm.DB, restaurantID uint, number string) *entity.Table {
	t.Helper()
	tb := entity.Table{RestaurantID: restaurantID, TableNumber: number, IsActive: true}
	require.NoError(t, db.Create(&tb).Error)
	return &tb
}

func seedCategory(t *testing.T, db *gorm.DB, restaurantID uint, name string) *entity.MenuCategory {
	t.Helper()
	c := entity.MenuCategory{RestaurantID: restaurantID, Name: name, IsActive: true}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedItem(t *testing.T, db *gorm.DB, restaurantID, categoryID uint, name string, price int64, available bool) *entity.MenuItem {
	t.Helper()
	i := entity.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Name:         name,
		Price:        price,
		IsAvailable:  available,
	}
	require.NoError(t, db.Create(&i).Error)
	return &i
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), nil)
}

func newTableService(db *gorm.DB) *TableService {
	return NewTableService(repository.NewTableRepository(db), repository.NewRestaurantRepository(db))
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(repository.NewMenuRepository(db), repository.NewRestaurantRepository(db))
}
