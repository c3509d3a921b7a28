package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type QrCustomization struct {
	Color   string `json:"color,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

func (c *QrCustomization) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func (c *QrCustomization) Scan(value any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return errors.New("unsupported column type for qr customization")
}

// QrCode is created once per table and never updated.
type QrCode struct {
	gorm.Model
	TableNumber   int              `gorm:"not null" json:"tableNumber"`
	Customization *QrCustomization `gorm:"type:json" json:"customization,omitempty"`
}
