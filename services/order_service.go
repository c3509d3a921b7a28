package services

import (
	"errors"
	"fmt"

	"github.com/rahul202k24/RestaurantPro/entity"
	"github.com/rahul202k24/RestaurantPro/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Menu *repository.MenuRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menu *repository.MenuRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, Menu: menu}
}

// ----- DTOs from Controller -----

type CreateOrderReq struct {
	TableNumber int               `json:"tableNumber" binding:"required,min=1"`
	Items       entity.OrderItems `json:"items" binding:"required"`
	// Optional client-computed total; when present it must match the
	// server-side sum or the order is rejected.
	Total int64 `json:"total"`
}

// Create validates line items against the menu, enforces the total invariant
// (sum of item price plus selected modifier deltas, times quantity) and
// stores the order as pending/unpaid.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "at least one line item is required"}
	}

	ids := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, &ValidationError{Field: "items", Message: "quantity must be at least 1"}
		}
		ids = append(ids, it.MenuItemID)
	}

	menuItems, err := s.Menu.GetItems(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	var total int64
	for _, it := range req.Items {
		m, ok := byID[it.MenuItemID]
		if !ok {
			return nil, &ValidationError{Field: "items", Message: fmt.Sprintf("menu item %d not found", it.MenuItemID)}
		}
		unit := m.Price
		for _, sel := range it.Modifiers {
			unit += modifierDelta(m.Modifiers, sel)
		}
		total += unit * int64(it.Quantity)
	}

	if req.Total != 0 && req.Total != total {
		return nil, &ValidationError{Field: "total", Message: fmt.Sprintf("expected %d", total)}
	}

	order := entity.Order{
		TableNumber:   req.TableNumber,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Items:         req.Items,
		Total:         total,
	}
	if err := s.Repo.Create(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// modifierDelta resolves a selected modifier against the item's groups.
// Selections that no longer exist on the menu price at zero; orders carry
// snapshots and must tolerate menu drift.
func modifierDelta(groups entity.ModifierGroups, sel entity.SelectedModifier) int64 {
	for _, g := range groups {
		if g.Name != sel.Name {
			continue
		}
		for _, opt := range g.Options {
			if opt.Name == sel.Option {
				return opt.Price
			}
		}
	}
	return 0
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.List()
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// UpdateStatus moves a pending order to a terminal state. Completed and
// cancelled orders stay where they are.
func (s *OrderService) UpdateStatus(id uint, to entity.OrderStatus) (*entity.Order, error) {
	if to != entity.OrderStatusCompleted && to != entity.OrderStatusCancelled {
		return nil, &ValidationError{Field: "status", Message: "must be completed or cancelled"}
	}

	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, id, []entity.OrderStatus{entity.OrderStatusPending}, to)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}
	return s.Get(id)
}
