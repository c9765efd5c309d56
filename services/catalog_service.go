package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/repository"
)

// CatalogService covers categories and menus, mutation is admin-gated at
// the route level.
type CatalogService struct {
	CategoryRepo *repository.CategoryRepository
	MenuRepo     *repository.MenuRepository
}

func NewCatalogService(cr *repository.CategoryRepository, mr *repository.MenuRepository) *CatalogService {
	return &CatalogService{CategoryRepo: cr, MenuRepo: mr}
}

// ----- categories -----

func (s *CatalogService) ListCategories(includeInactive bool) ([]entity.Category, error) {
	if includeInactive {
		return s.CategoryRepo.ListAll()
	}
	return s.CategoryRepo.ListActive()
}

func (s *CatalogService) CreateCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidPayload
	}
	cat := &entity.Category{Name: name}
	if err := s.CategoryRepo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) UpdateCategory(id uint, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidPayload
	}
	if err := s.CategoryRepo.Update(id, map[string]any{"name": name}); err != nil {
		return nil, err
	}
	return s.CategoryRepo.FindByID(id)
}

// DeleteCategory soft deletes; the row stays for old menus and reports.
func (s *CatalogService) DeleteCategory(id uint) error {
	affected, err := s.CategoryRepo.SetState(id, entity.StateInactive)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CatalogService) RestoreCategory(id uint) error {
	affected, err := s.CategoryRepo.SetState(id, entity.StateActive)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ----- menus -----

// ListMenus filters by category name when given, matching the public
// catalog-read contract.
func (s *CatalogService) ListMenus(categoryName string) ([]entity.Menu, error) {
	var categoryID uint
	if categoryName != "" {
		cat, err := s.CategoryRepo.FindByName(categoryName)
		if err != nil {
			return nil, err
		}
		categoryID = cat.ID
	}
	return s.MenuRepo.ListActive(categoryID)
}

func (s *CatalogService) GetMenu(id uint) (*entity.Menu, error) {
	return s.MenuRepo.FindByID(id)
}

type MenuIn struct {
	Name        string `json:"name" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Stock       int    `json:"stock" binding:"min=0"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

func (s *CatalogService) CreateMenu(in *MenuIn) (*entity.Menu, error) {
	if _, err := s.CategoryRepo.FindByID(in.CategoryID); err != nil {
		return nil, err
	}
	m := &entity.Menu{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
		CategoryID:  in.CategoryID,
	}
	if err := s.MenuRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *CatalogService) UpdateMenu(id uint, in *MenuIn) (*entity.Menu, error) {
	if _, err := s.MenuRepo.FindByID(id); err != nil {
		return nil, err
	}
	if _, err := s.CategoryRepo.FindByID(in.CategoryID); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"price":       in.Price,
		"stock":       in.Stock,
		"description": in.Description,
		"category_id": in.CategoryID,
	}
	if err := s.MenuRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.MenuRepo.FindByID(id)
}

func (s *CatalogService) SetMenuImage(id uint, filename string) error {
	return s.MenuRepo.Update(id, map[string]any{"image": filename})
}

func (s *CatalogService) SetMenuStock(id uint, stock int) error {
	if stock < 0 {
		return ErrInvalidPayload
	}
	return s.MenuRepo.SetStock(id, stock)
}

func (s *CatalogService) DeleteMenu(id uint) error {
	affected, err := s.MenuRepo.SetState(id, entity.StateInactive)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CatalogService) RestoreMenu(id uint) error {
	affected, err := s.MenuRepo.SetState(id, entity.StateActive)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CatalogService) StockStats(lowThreshold int) (*repository.StockStats, error) {
	if lowThreshold <= 0 {
		lowThreshold = 5
	}
	return s.MenuRepo.StockStats(lowThreshold)
}
