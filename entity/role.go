package entity

import (
	"gorm.io/gorm"
)

// Role names form a closed set; checks go through the auth middleware only.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleCustomer = "customer"
)

type Role struct {
	gorm.Model
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	State string `gorm:"not null;default:active" json:"state"`

	Users []User `json:"-"`
}
