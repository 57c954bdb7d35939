package repository

import (
	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ActiveCategories(restaurantID uint) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("sort_order ASC, name ASC").
		Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CountCategories(restaurantID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuCategory{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}

func (r *MenuRepository) CategoryNameExists(restaurantID uint, name string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.MenuCategory{}).
		Where("restaurant_id = ? AND name = ?", restaurantID, name).
		Count(&count).Error
	return count > 0, err
}

func (r *MenuRepository) CreateCategory(c *entity.MenuCategory) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) DeleteCategory(id, restaurantID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).Delete(&entity.MenuCategory{})
	return res.RowsAffected, res.Error
}

// ---------------- Items ----------------

func (r *MenuRepository) AvailableItems(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("category_id ASC, sort_order ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) CategoryBelongs(categoryID, restaurantID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.MenuCategory{}).
		Where("id = ? AND restaurant_id = ?", categoryID, restaurantID).
		Count(&count).Error
	return count > 0, err
}

func (r *MenuRepository) CreateItem(i *entity.MenuItem) error {
	return r.DB.Create(i).Error
}

func (r *MenuRepository) UpdateItem(id, restaurantID uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) DeleteItem(id, restaurantID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).Delete(&entity.MenuItem{})
	return res.RowsAffected, res.Error
}
