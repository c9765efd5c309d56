package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/repository"
)

// ShippingService resolves the flat delivery charge from the ongkir table.
type ShippingService struct {
	Repo *repository.OngkirRepository
}

func NewShippingService(r *repository.OngkirRepository) *ShippingService {
	return &ShippingService{Repo: r}
}

func (s *ShippingService) List() ([]entity.Ongkir, error) {
	return s.Repo.List()
}

// ChargeFor returns the district's flat price; an unknown or zero district
// id means no delivery charge.
func (s *ShippingService) ChargeFor(districtID uint) (int64, error) {
	if districtID == 0 {
		return 0, nil
	}
	o, err := s.Repo.FindByID(districtID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return o.Price, nil
}
