package entity

import (
	"gorm.io/gorm"
)

// TransactionDetail is a line item. Price is snapshotted from the menu at
// checkout and never updated afterwards.
type TransactionDetail struct {
	gorm.Model
	TransactionID uint        `gorm:"not null" json:"transactionId"`
	Transaction   Transaction `json:"-"`

	MenuID uint `gorm:"not null" json:"menuId"`
	Menu   Menu `json:"-"` // preload only when the menu name is needed

	Qty   int   `gorm:"not null" json:"qty"`
	Price int64 `gorm:"not null" json:"price"`
}
