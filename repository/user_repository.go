package repository

import (
	"time"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ? AND is_blocked = ?", email, false).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GET /staff rows
type StaffRow struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *UserRepository) ListStaff(restaurantID uint) ([]StaffRow, error) {
	var out []StaffRow
	err := r.DB.Model(&entity.User{}).
		Select("id, email, role, first_name, last_name, created_at").
		Where("restaurant_id = ? AND role = ?", restaurantID, entity.RoleStaff).
		Order("created_at DESC").
		Scan(&out).Error
	return out, err
}

// DeleteStaff is scoped to the tenant and the STAFF role so an admin cannot
// remove owners or users of another restaurant.
func (r *UserRepository) DeleteStaff(id, restaurantID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ? AND role = ?", id, restaurantID, entity.RoleStaff).
		Delete(&entity.User{})
	return res.RowsAffected, res.Error
}
