package repository

import (
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

type OngkirRepository struct {
	DB *gorm.DB
}

func NewOngkirRepository(db *gorm.DB) *OngkirRepository {
	return &OngkirRepository{DB: db}
}

func (r *OngkirRepository) List() ([]entity.Ongkir, error) {
	var out []entity.Ongkir
	err := r.DB.Order("district_name").Find(&out).Error
	return out, err
}

func (r *OngkirRepository) FindByID(id uint) (*entity.Ongkir, error) {
	var o entity.Ongkir
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
