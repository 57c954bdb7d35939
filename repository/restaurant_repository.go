package repository

import (
	"time"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) PlanOf(id uint) (string, error) {
	var row struct{ Plan string }
	err := r.DB.Model(&entity.Restaurant{}).Select("plan").Where("id = ?", id).First(&row).Error
	return row.Plan, err
}

// GET /restaurants (super admin) rows, owner joined in
type RestaurantRow struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Plan           string    `json:"plan"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	WhatsappNumber string    `json:"whatsapp_number"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	OwnerEmail     string    `json:"owner_email"`
	OwnerFirstName string    `json:"owner_first_name"`
	OwnerLastName  string    `json:"owner_last_name"`
}

func (r *RestaurantRepository) ListWithOwners() ([]RestaurantRow, error) {
	var out []RestaurantRow
	err := r.DB.Table("restaurants AS r").
		Select("r.id, r.name, r.plan, r.address, r.phone, r.whatsapp_number, r.is_active, r.created_at, "+
			"u.email AS owner_email, u.first_name AS owner_first_name, u.last_name AS owner_last_name").
		Joins("LEFT JOIN users u ON u.id = r.owner_id").
		Where("r.deleted_at IS NULL").
		Order("r.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *RestaurantRepository) UpdateProfile(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(fields).Error
}

func (r *RestaurantRepository) CountTables(restaurantID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) CountCategories(restaurantID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuCategory{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}

// DeleteCascade removes a tenant and everything it owns, inside the caller's
// transaction. Order matters: children before parents.
func (r *RestaurantRepository) DeleteCascade(tx *gorm.DB, id uint) error {
	if err := tx.Unscoped().
		Where("order_id IN (?)", tx.Model(&entity.Order{}).Select("id").Where("restaurant_id = ?", id)).
		Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("restaurant_id = ?", id).Delete(&entity.Order{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("restaurant_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("restaurant_id = ?", id).Delete(&entity.MenuCategory{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("restaurant_id = ?", id).Delete(&entity.Table{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("restaurant_id = ?", id).Delete(&entity.User{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Restaurant{}, id).Error
}

type PlatformStats struct {
	TotalRestaurants   int64 `json:"total_restaurants"`
	ActiveRestaurants  int64 `json:"active_restaurants"`
	PremiumRestaurants int64 `json:"premium_restaurants"`
	TotalOrders        int64 `json:"total_orders"`
	TotalRevenue       int64 `json:"total_revenue"`
}

func (r *RestaurantRepository) PlatformStats() (*PlatformStats, error) {
	var s PlatformStats
	if err := r.DB.Model(&entity.Restaurant{}).Count(&s.TotalRestaurants).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Restaurant{}).Where("is_active = ?", true).Count(&s.ActiveRestaurants).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Restaurant{}).Where("plan = ?", entity.PlanPremium).Count(&s.PremiumRestaurants).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Order{}).Count(&s.TotalOrders).Error; err != nil {
		return nil, err
	}
	var row struct{ Revenue int64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Scan(&row).Error; err != nil {
		return nil, err
	}
	s.TotalRevenue = row.Revenue
	return &s, nil
}
