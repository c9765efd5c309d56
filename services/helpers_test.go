package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dontkeep/order-menu-backend/configs"
	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.SetupDatabase(db))
	require.NoError(t, configs.SeedRoles(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, roleName string) *entity.User {
	t.Helper()
	var role entity.Role
	require.NoError(t, db.Where("name = ?", roleName).First(&role).Error)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hashed),
		RoleID:    role.ID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMenu(t *testing.T, db *gorm.DB, name string, price int64, stock int) *entity.Menu {
	t.Helper()
	cat := &entity.Category{Name: "Makanan " + name}
	require.NoError(t, db.Create(cat).Error)

	menu := &entity.Menu{
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(menu).Error)
	return menu
}

func createOngkir(t *testing.T, db *gorm.DB, district string, price int64) *entity.Ongkir {
	t.Helper()
	row := &entity.Ongkir{DistrictName: district, Price: price}
	require.NoError(t, db.Create(row).Error)
	return row
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		"test-secret",
		time.Hour,
	)
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

// newTrxService wires a transaction service with an unconfigured payment
// gateway; token requests fail and checkout reports a gateway error instead.
func newTrxService(db *gorm.DB) *TransactionService {
	return NewTransactionService(
		db,
		repository.NewTransactionRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		repository.NewUserRepository(db),
		NewShippingService(repository.NewOngkirRepository(db)),
		NewPaymentService("", ""),
	)
}
