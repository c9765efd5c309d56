package services

import (
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

func (s *CartService) Get(userID uint) ([]entity.CartItem, int64, error) {
	items, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range items {
		subtotal += int64(it.Qty) * it.Menu.Price
	}
	return items, subtotal, nil
}

// Add merges into the existing (user, menu) row. The merged quantity must
// not exceed the menu's current stock.
func (s *CartService) Add(userID, menuID uint, qty int) (*entity.CartItem, error) {
	if qty <= 0 {
		return nil, ErrInvalidQty
	}

	menu, err := s.MenuRepo.FindActiveByID(menuID)
	if err != nil {
		return nil, err
	}

	existingQty := 0
	if existing, err := s.CartRepo.Find(userID, menuID); err == nil {
		existingQty = existing.Qty
	}
	if existingQty+qty > menu.Stock {
		return nil, ErrInsufficientStock
	}

	var out *entity.CartItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.CartRepo.Upsert(tx, userID, menuID, qty)
		if err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CartService) UpdateQty(userID, menuID uint, qty int) error {
	if qty <= 0 {
		return ErrInvalidQty
	}
	menu, err := s.MenuRepo.FindActiveByID(menuID)
	if err != nil {
		return err
	}
	if qty > menu.Stock {
		return ErrInsufficientStock
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.SetQty(tx, userID, menuID, qty)
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *CartService) Remove(userID, menuID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.Remove(tx, userID, menuID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
}

func (s *CartService) Total(userID uint) (int64, error) {
	return s.CartRepo.Total(userID)
}
