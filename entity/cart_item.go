package entity

import (
	"gorm.io/gorm"
)

// CartItem holds at most one row per (user, menu) pair; repeated adds merge
// into the existing row.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_menu" json:"userId"`
	User   User `json:"-"`

	MenuID uint `gorm:"not null;uniqueIndex:idx_cart_user_menu" json:"menuId"`
	Menu   Menu `json:"menu"`

	Qty int `gorm:"not null" json:"qty"`
}
