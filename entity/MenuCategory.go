package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
