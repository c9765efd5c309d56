package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	PhoneNumber string `json:"phoneNumber"`

	// shipping profile
	AddressDetail string `json:"addressDetail"`
	Province      string `json:"province"`
	City          string `json:"city"`
	Regency       string `json:"regency"`
	District      string `json:"district"`

	RoleID uint `gorm:"not null" json:"roleId"`
	Role   Role `json:"-"` // preload only when the role name is needed

	State string `gorm:"not null;default:active" json:"state"`

	CartItems    []CartItem    `json:"-"`
	Transactions []Transaction `json:"-"`
	Sessions     []Session     `json:"-"`
}
