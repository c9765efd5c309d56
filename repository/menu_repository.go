package repository

import (
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListActive(categoryID uint) ([]entity.Menu, error) {
	q := r.DB.Where("state = ?", entity.StateActive)
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var out []entity.Menu
	err := q.Order("name").Find(&out).Error
	return out, err
}

func (r *MenuRepository) ListAll() ([]entity.Menu, error) {
	var out []entity.Menu
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindActiveByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Where("id = ? AND state = ?", id, entity.StateActive).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) SetState(id uint, state string) (int64, error) {
	res := r.DB.Model(&entity.Menu{}).Where("id = ?", id).Update("state", state)
	return res.RowsAffected, res.Error
}

// DecrementStock succeeds only when the menu is still active and enough
// stock remains; the caller treats zero affected rows as an
// insufficient-stock failure. The state check catches menus deactivated
// after they were added to a cart.
func (r *MenuRepository) DecrementStock(tx *gorm.DB, menuID uint, qty int) (int64, error) {
	res := tx.Model(&entity.Menu{}).
		Where("id = ? AND stock >= ? AND state = ?", menuID, qty, entity.StateActive).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) SetStock(id uint, stock int) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Update("stock", stock).Error
}

type StockStats struct {
	TotalMenus int64 `json:"totalMenus"`
	LowStock   int64 `json:"lowStock"`
	ZeroStock  int64 `json:"zeroStock"`
}

func (r *MenuRepository) StockStats(lowThreshold int) (*StockStats, error) {
	var st StockStats
	base := r.DB.Model(&entity.Menu{}).Where("state = ?", entity.StateActive)
	if err := base.Session(&gorm.Session{}).Count(&st.TotalMenus).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("stock > 0 AND stock < ?", lowThreshold).Count(&st.LowStock).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("stock = 0").Count(&st.ZeroStock).Error; err != nil {
		return nil, err
	}
	return &st, nil
}
