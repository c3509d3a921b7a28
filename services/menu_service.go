package services

import (
	"strings"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- DTOs from Controller -----

type CreateCategoryReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type CreateMenuItemReq struct {
	CategoryID  uint                  `json:"categoryId" binding:"required"`
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Price       *int64                `json:"price" binding:"required"` // minor currency units
	ImageURL    string                `json:"imageUrl"`
	Available   *bool                 `json:"available"`
	Modifiers   entity.ModifierGroups `json:"modifiers"`
}

func (s *MenuService) ListCategories() ([]entity.MenuCategory, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) CreateCategory(req *CreateCategoryReq) (*entity.MenuCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}

	cat := entity.MenuCategory{
		Name:        name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.Repo.CreateCategory(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *MenuService) ListItems(categoryID *uint) ([]entity.MenuItem, error) {
	return s.Repo.ListItems(categoryID)
}

func (s *MenuService) CreateItem(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	if req.Price == nil {
		return nil, &ValidationError{Field: "price", Message: "is required"}
	}
	if *req.Price < 0 {
		return nil, &ValidationError{Field: "price", Message: "must not be negative"}
	}
	for _, g := range req.Modifiers {
		if strings.TrimSpace(g.Name) == "" {
			return nil, &ValidationError{Field: "modifiers", Message: "group name is required"}
		}
	}

	exists, err := s.Repo.CategoryExists(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &ValidationError{Field: "categoryId", Message: "references an unknown category"}
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := entity.MenuItem{
		CategoryID:  req.CategoryID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       *req.Price,
		ImageURL:    req.ImageURL,
		Available:   available,
		Modifiers:   req.Modifiers,
	}
	if err := s.Repo.CreateItem(&item); err != nil {
		return nil, err
	}
	return &item, nil
}
