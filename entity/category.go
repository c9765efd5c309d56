package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	State string `gorm:"not null;default:active" json:"state"`

	Menus []Menu `json:"-"`
}
