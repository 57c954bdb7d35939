package services

import (
	"errors"
	"strings"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
	"gorm.io/gorm"
)

type TableService struct {
	Repo     *repository.TableRepository
	RestRepo *repository.RestaurantRepository
}

func NewTableService(repo *repository.TableRepository, restRepo *repository.RestaurantRepository) *TableService {
	return &TableService{Repo: repo, RestRepo: restRepo}
}

type TableListOut struct {
	Tables []entity.Table `json:"tables"`
	Limits ResourceLimit  `json:"limits"`
	Plan   string         `json:"plan"`
}

func (s *TableService) List(restaurantID uint) (*TableListOut, error) {
	tables, err := s.Repo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	plan := s.planOf(restaurantID)
	return &TableListOut{
		Tables: tables,
		Limits: ResourceLimit{Current: int64(len(tables)), Max: TariffLimit(LimitKindTables, plan)},
		Plan:   plan,
	}, nil
}

// Create runs the creation guard: tariff limit first, then the natural-key
// uniqueness check, then the insert.
func (s *TableService) Create(restaurantID uint, tableNumber string) (uint, error) {
	tableNumber = strings.TrimSpace(tableNumber)
	if tableNumber == "" {
		return 0, Validation("table_number is required")
	}

	plan := s.planOf(restaurantID)

	count, err := s.Repo.Count(restaurantID)
	if err != nil {
		return 0, err
	}
	limit := TariffLimit(LimitKindTables, plan)
	if count >= int64(limit) {
		return 0, &LimitReachedError{
			LimitType:    LimitKindTables,
			CurrentCount: int(count),
			Limit:        limit,
			Plan:         plan,
		}
	}

	exists, err := s.Repo.NumberExists(restaurantID, tableNumber)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrConflict
	}

	t := entity.Table{
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		IsActive:     true,
	}
	if err := s.Repo.Create(&t); err != nil {
		return 0, err
	}
	return t.ID, nil
}

// Delete refuses while the table still has orders on the board; completed or
// cancelled history does not block it.
func (s *TableService) Delete(restaurantID, id uint) error {
	if _, err := s.Repo.FindForRestaurant(id, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	active, err := s.Repo.CountActiveOrders(id)
	if err != nil {
		return err
	}
	if active > 0 {
		return Validation("cannot delete a table with active orders")
	}

	affected, err := s.Repo.Delete(id, restaurantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// unknown or missing restaurant reads as FREE so limits stay closed
func (s *TableService) planOf(restaurantID uint) string {
	plan, err := s.RestRepo.PlanOf(restaurantID)
	if err != nil || plan == "" {
		return entity.PlanFree
	}
	return plan
}
