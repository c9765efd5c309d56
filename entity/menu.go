package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Price       int64  `gorm:"not null" json:"price"` // rupiah
	Image       string `json:"image"`                 // filename under the upload dir
	Stock       int    `gorm:"not null;default:0" json:"stock"`
	Description string `json:"description"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	State string `gorm:"not null;default:active" json:"state"`

	CartItems []CartItem          `json:"-"`
	Details   []TransactionDetail `json:"-"`
}
