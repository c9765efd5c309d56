package repository

import (
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) ListActive() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("state = ?", entity.StateActive).Order("name").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) ListAll() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) FindByName(name string) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Where("name = ? AND state = ?", name, entity.StateActive).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

// SetState soft deletes (state=inactive) or restores a category.
func (r *CategoryRepository) SetState(id uint, state string) (int64, error) {
	res := r.DB.Model(&entity.Category{}).Where("id = ?", id).Update("state", state)
	return res.RowsAffected, res.Error
}
