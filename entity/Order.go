package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus is an independent axis from OrderStatus.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type SelectedModifier struct {
	Name   string `json:"name"`
	Option string `json:"option"`
}

type OrderItem struct {
	MenuItemID uint               `json:"menuItemId"`
	Quantity   int                `json:"quantity"`
	Modifiers  []SelectedModifier `json:"modifiers,omitempty"`
}

// OrderItems is stored as a JSON column. Menu item ids are snapshots, not
// foreign keys; a later menu change must not break stored orders.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

func (o *OrderItems) Scan(value any) error {
	if value == nil {
		*o = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	}
	return errors.New("unsupported column type for order items")
}

type Order struct {
	gorm.Model
	TableNumber   int           `gorm:"not null" json:"tableNumber"`
	Status        OrderStatus   `gorm:"not null;default:pending" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:unpaid" json:"paymentStatus"`
	Items         OrderItems    `gorm:"type:json" json:"items"`
	Total         int64         `gorm:"not null" json:"total"` // minor currency units

	Transactions []Transaction `json:"-"`
}
