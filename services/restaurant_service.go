package services

import (
	"strings"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, userRepo *repository.UserRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, UserRepo: userRepo}
}

// ----- Provisioning -----

type ProvisionReq struct {
	RestaurantName string `json:"restaurant_name" binding:"required"`
	OwnerEmail     string `json:"owner_email" binding:"required,email"`
	OwnerPassword  string `json:"owner_password" binding:"required,min=6"`
	OwnerFirstName string `json:"owner_first_name" binding:"required"`
	OwnerLastName  string `json:"owner_last_name" binding:"required"`
	Plan           string `json:"plan"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

// Provision creates a tenant and its owner in one transaction: email check,
// restaurant with a NULL owner, owner user, then the owner back-patch. Any
// failure rolls back the whole thing so no orphan rows survive.
func (s *RestaurantService) Provision(req *ProvisionReq) (uint, error) {
	email := strings.ToLower(strings.TrimSpace(req.OwnerEmail))

	plan := entity.PlanFree
	if req.Plan == entity.PlanPremium {
		plan = entity.PlanPremium
	}

	var restaurantID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		rest := entity.Restaurant{
			Name:     req.RestaurantName,
			Plan:     plan,
			Address:  req.Address,
			Phone:    req.Phone,
			IsActive: true,
		}
		if err := s.Repo.Create(tx, &rest); err != nil {
			return err
		}

		owner := entity.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			FirstName:    req.OwnerFirstName,
			LastName:     req.OwnerLastName,
			RestaurantID: &rest.ID,
		}
		if err := s.UserRepo.Create(tx, &owner); err != nil {
			return err
		}

		if err := tx.Model(&entity.Restaurant{}).
			Where("id = ?", rest.ID).
			Update("owner_id", owner.ID).Error; err != nil {
			return err
		}

		restaurantID = rest.ID
		return nil
	})
	return restaurantID, err
}

// ----- Limits -----

type ResourceLimit struct {
	Current int64 `json:"current"`
	Max     int   `json:"max"`
}

type LimitsOut struct {
	Tables     ResourceLimit `json:"tables"`
	Categories ResourceLimit `json:"categories"`
	Plan       string        `json:"plan"`
}

func (s *RestaurantService) Limits(restaurantID uint) (*LimitsOut, error) {
	rest, err := s.Repo.FindByID(restaurantID)
	if err != nil {
		return nil, ErrNotFound
	}
	tables, err := s.Repo.CountTables(restaurantID)
	if err != nil {
		return nil, err
	}
	categories, err := s.Repo.CountCategories(restaurantID)
	if err != nil {
		return nil, err
	}
	return &LimitsOut{
		Tables:     ResourceLimit{Current: tables, Max: TariffLimit(LimitKindTables, rest.Plan)},
		Categories: ResourceLimit{Current: categories, Max: TariffLimit(LimitKindCategories, rest.Plan)},
		Plan:       rest.Plan,
	}, nil
}

func (s *RestaurantService) My(restaurantID uint) (*entity.Restaurant, *LimitsOut, error) {
	rest, err := s.Repo.FindByID(restaurantID)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	limits, err := s.Limits(restaurantID)
	if err != nil {
		return nil, nil, err
	}
	return rest, limits, nil
}

func (s *RestaurantService) UpdateMy(restaurantID uint, name, address, phone, whatsapp string) error {
	if name == "" {
		return Validation("name is required")
	}
	return s.Repo.UpdateProfile(restaurantID, map[string]any{
		"name":            name,
		"address":         address,
		"phone":           phone,
		"whatsapp_number": whatsapp,
	})
}

// ----- Platform administration -----

func (s *RestaurantService) List() ([]repository.RestaurantRow, error) {
	return s.Repo.ListWithOwners()
}

// AdminUpdate toggles activation and/or plan for any tenant.
func (s *RestaurantService) AdminUpdate(id uint, isActive *bool, plan *string) error {
	fields := map[string]any{}
	if isActive != nil {
		fields["is_active"] = *isActive
	}
	if plan != nil {
		if *plan != entity.PlanFree && *plan != entity.PlanPremium {
			return Validation("unknown plan: %s", *plan)
		}
		fields["plan"] = *plan
	}
	if len(fields) == 0 {
		return Validation("nothing to update")
	}

	if _, err := s.Repo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.Repo.UpdateProfile(id, fields)
}

// Delete removes a tenant and all its data in one transaction.
func (s *RestaurantService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteCascade(tx, id)
	})
}

func (s *RestaurantService) PlatformStats() (*repository.PlatformStats, error) {
	return s.Repo.PlatformStats()
}
