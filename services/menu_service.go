package services

import (
	"strings"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/godz1llla/DAMDI-QR-ORG/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

// MenuSection is one active category with its available items, as rendered
// on the customer's phone after scanning.
type MenuSection struct {
	Category entity.MenuCategory `json:"category"`
	Items    []entity.MenuItem   `json:"items"`
}

type MenuOut struct {
	Menu   []MenuSection `json:"menu"`
	Limits ResourceLimit `json:"limits"`
	Plan   string        `json:"plan"`
}

func (s *MenuService) Menu(restaurantID uint) (*MenuOut, error) {
	cats, err := s.Repo.ActiveCategories(restaurantID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.AvailableItems(restaurantID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]entity.MenuItem)
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}

	sections := make([]MenuSection, 0, len(cats))
	for _, c := range cats {
		sec := MenuSection{Category: c, Items: byCategory[c.ID]}
		if sec.Items == nil {
			sec.Items = []entity.MenuItem{}
		}
		sections = append(sections, sec)
	}

	plan := s.planOf(restaurantID)
	return &MenuOut{
		Menu:   sections,
		Limits: ResourceLimit{Current: int64(len(cats)), Max: TariffLimit(LimitKindCategories, plan)},
		Plan:   plan,
	}, nil
}

// ----- Categories -----

func (s *MenuService) CreateCategory(restaurantID uint, name string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, Validation("name is required")
	}

	plan := s.planOf(restaurantID)

	count, err := s.Repo.CountCategories(restaurantID)
	if err != nil {
		return 0, err
	}
	limit := TariffLimit(LimitKindCategories, plan)
	if count >= int64(limit) {
		return 0, &LimitReachedError{
			LimitType:    LimitKindCategories,
			CurrentCount: int(count),
			Limit:        limit,
			Plan:         plan,
		}
	}

	exists, err := s.Repo.CategoryNameExists(restaurantID, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrConflict
	}

	c := entity.MenuCategory{
		RestaurantID: restaurantID,
		Name:         name,
		IsActive:     true,
	}
	if err := s.Repo.CreateCategory(&c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *MenuService) DeleteCategory(restaurantID, id uint) error {
	affected, err := s.Repo.DeleteCategory(id, restaurantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- Items -----

type CreateItemReq struct {
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       *int64 `json:"price" binding:"required"`
	ImageURL    string `json:"image_url"`
	IsAvailable *bool  `json:"is_available"`
}

func (s *MenuService) CreateItem(restaurantID uint, req *CreateItemReq) (uint, error) {
	if req.Price == nil || *req.Price < 0 {
		return 0, Validation("price must be non-negative")
	}

	belongs, err := s.Repo.CategoryBelongs(req.CategoryID, restaurantID)
	if err != nil {
		return 0, err
	}
	if !belongs {
		return 0, ErrNotFound
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	item := entity.MenuItem{
		RestaurantID: restaurantID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  available,
	}
	if err := s.Repo.CreateItem(&item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

type UpdateItemReq struct {
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       *int64 `json:"price" binding:"required"`
	ImageURL    string `json:"image_url"`
	IsAvailable *bool  `json:"is_available"`
}

func (s *MenuService) UpdateItem(restaurantID, id uint, req *UpdateItemReq) error {
	if req.Price == nil || *req.Price < 0 {
		return Validation("price must be non-negative")
	}

	belongs, err := s.Repo.CategoryBelongs(req.CategoryID, restaurantID)
	if err != nil {
		return err
	}
	if !belongs {
		return ErrNotFound
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	affected, err := s.Repo.UpdateItem(id, restaurantID, map[string]any{
		"category_id":  req.CategoryID,
		"name":         req.Name,
		"description":  req.Description,
		"price":        *req.Price,
		"image_url":    req.ImageURL,
		"is_available": available,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) DeleteItem(restaurantID, id uint) error {
	affected, err := s.Repo.DeleteItem(id, restaurantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MenuService) planOf(restaurantID uint) string {
	plan, err := s.RestRepo.PlanOf(restaurantID)
	if err != nil || plan == "" {
		return entity.PlanFree
	}
	return plan
}
