package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ListForUser returns the cart rows with their menus preloaded. An empty
// cart is a valid, empty slice rather than an error.
func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Preload("Menu").Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

func (r *CartRepository) Find(userID, menuID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("user_id = ? AND menu_id = ?", userID, menuID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert merges a repeated add into the existing (user, menu) row.
func (r *CartRepository) Upsert(tx *gorm.DB, userID, menuID uint, qty int) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("user_id = ? AND menu_id = ?", userID, menuID).First(&item).Error
	if err == nil {
		item.Qty += qty
		return &item, tx.Save(&item).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	item = entity.CartItem{UserID: userID, MenuID: menuID, Qty: qty}
	return &item, tx.Create(&item).Error
}

func (r *CartRepository) SetQty(tx *gorm.DB, userID, menuID uint, qty int) (int64, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("user_id = ? AND menu_id = ?", userID, menuID).
		Update("qty", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) Remove(tx *gorm.DB, userID, menuID uint) (int64, error) {
	res := tx.Unscoped().Where("user_id = ? AND menu_id = ?", userID, menuID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}

// Total is the live-price sum; the snapshot semantics only start at checkout.
func (r *CartRepository) Total(userID uint) (int64, error) {
	var row struct{ Total int64 }
	err := r.DB.Table("cart_items AS ci").
		Select("COALESCE(SUM(ci.qty * m.price), 0) AS total").
		Joins("JOIN menus m ON m.id = ci.menu_id").
		Where("ci.user_id = ? AND ci.deleted_at IS NULL", userID).
		Scan(&row).Error
	return row.Total, err
}
