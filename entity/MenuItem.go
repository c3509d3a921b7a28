package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// ModifierOption is one selectable option inside a modifier group.
// Price is the delta in minor currency units and may be zero.
type ModifierOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type ModifierGroup struct {
	Name    string           `json:"name"`
	Options []ModifierOption `json:"options"`
}

// ModifierGroups is stored as a JSON column.
type ModifierGroups []ModifierGroup

func (m ModifierGroups) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *ModifierGroups) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("unsupported column type for modifiers")
}

type MenuItem struct {
	gorm.Model
	CategoryID  uint         `gorm:"index;not null" json:"categoryId"`
	Category    MenuCategory `json:"-"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	Price       int64        `gorm:"not null" json:"price"` // minor currency units
	ImageURL    string       `json:"imageUrl"`
	Available   bool         `json:"available"`
	Modifiers   ModifierGroups `gorm:"type:json" json:"modifiers"`
}
