package configs

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

// SeedRoles inserts the closed role set if missing.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{entity.RoleAdmin, entity.RoleEmployee, entity.RoleCustomer} {
		var role entity.Role
		err := db.Where("name = ?", name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		FirstName: "Admin",
		LastName:  "Toko",
		Email:     cfg.AdminEmail,
		Password:  string(hashed),
		RoleID:    adminRole.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("seeded admin account %s", cfg.AdminEmail)
	return nil
}

// SeedOngkir loads the district delivery-charge table once.
func SeedOngkir(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Ongkir{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := []entity.Ongkir{
		{DistrictName: "Jatiluhur", DistrictPostKode: "41152-41161", Price: 7000},
		{DistrictName: "Purwakarta (kota)", DistrictPostKode: "41111-41119", Price: 7000},
		{DistrictName: "Babakancikao", DistrictPostKode: "41151", Price: 12000},
		{DistrictName: "Bungursari", DistrictPostKode: "41181", Price: 20000},
		{DistrictName: "Pasawahan", DistrictPostKode: "41171-41172", Price: 12000},
		{DistrictName: "Sukatani", DistrictPostKode: "41167", Price: 9000},
	}
	return db.Create(&rows).Error
}
