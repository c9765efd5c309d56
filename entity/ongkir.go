package entity

import (
	"gorm.io/gorm"
)

// Ongkir is the flat delivery-charge table, keyed by district.
type Ongkir struct {
	gorm.Model
	DistrictName     string `gorm:"not null" json:"districtName"`
	DistrictPostKode string `json:"districtPostKode"` // postal-code range, e.g. "41152-41161"
	Price            int64  `gorm:"not null" json:"price"`
}
