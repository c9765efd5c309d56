package entity

import (
	"gorm.io/gorm"
)

type Transaction struct {
	gorm.Model
	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"` // preload for admin listings only

	Address        string `gorm:"not null" json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	DeliveryCharge int64  `gorm:"not null;default:0" json:"deliveryCharge"`
	Total          int64  `gorm:"not null" json:"total"`

	Status         TransactionStatus `gorm:"size:32;not null;default:pending" json:"status"`
	DeliveryStatus DeliveryStatus    `gorm:"size:32;not null;default:''" json:"deliveryStatus"`

	PaymentProof string `json:"paymentProof"` // filename under the upload dir
	State        string `gorm:"not null;default:active" json:"state"`

	Details []TransactionDetail `json:"details"`
}
