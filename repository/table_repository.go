package repository

import (
	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) ListByRestaurant(restaurantID uint) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("table_number ASC").
		Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Count(restaurantID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}

func (r *TableRepository) NumberExists(restaurantID uint, tableNumber string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).
		Where("restaurant_id = ? AND table_number = ?", restaurantID, tableNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) FindForRestaurant(id, restaurantID uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CountActiveOrders counts orders still on the board for a table; a table
// with any cannot be deleted.
func (r *TableRepository) CountActiveOrders(tableID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("table_id = ? AND status IN ?", tableID, entity.ActiveOrderStatuses).
		Count(&count).Error
	return count, err
}

func (r *TableRepository) Delete(id, restaurantID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).Delete(&entity.Table{})
	return res.RowsAffected, res.Error
}
