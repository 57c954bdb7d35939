package services

import (
	"strings"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"golang.org/x/crypto/bcrypt"
)

type StaffService struct {
	UserRepo *repository.UserRepository
}

func NewStaffService(userRepo *repository.UserRepository) *StaffService {
	return &StaffService{UserRepo: userRepo}
}

func (s *StaffService) List(restaurantID uint) ([]repository.StaffRow, error) {
	return s.UserRepo.ListStaff(restaurantID)
}

func (s *StaffService) Create(restaurantID uint, email, password, firstName, lastName string) (uint, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || firstName == "" || lastName == "" {
		return 0, Validation("email, password, first_name and last_name are required")
	}

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	u := entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleStaff,
		FirstName:    firstName,
		LastName:     lastName,
		RestaurantID: &restaurantID,
	}
	if err := s.UserRepo.Create(s.UserRepo.DB, &u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *StaffService) Delete(restaurantID, id uint) error {
	affected, err := s.UserRepo.DeleteStaff(id, restaurantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
