package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

func TestCartAddMergesRows(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	menu := createMenu(t, db, "Nasi Goreng", 25000, 10)

	_, err := svc.Add(user.ID, menu.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, menu.ID, 3)
	require.NoError(t, err)

	items, subtotal, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Qty)
	assert.EqualValues(t, 5*25000, subtotal)
}

func TestCartAddNeverExceedsStock(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	menu := createMenu(t, db, "Sate Ayam", 20000, 4)

	_, err := svc.Add(user.ID, menu.ID, 3)
	require.NoError(t, err)

	// 3 already in the cart, 2 more would exceed the 4 in stock
	_, err = svc.Add(user.ID, menu.ID, 2)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	items, _, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Qty)
}

func TestCartAddValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	menu := createMenu(t, db, "Es Teh", 5000, 10)

	_, err := svc.Add(user.ID, menu.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQty)

	_, err = svc.Add(user.ID, 9999, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// inactive menus are not addable
	require.NoError(t, db.Model(menu).Update("state", entity.StateInactive).Error)
	_, err = svc.Add(user.ID, menu.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartUpdateQtyAndRemove(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	menu := createMenu(t, db, "Bakso", 15000, 8)

	_, err := svc.Add(user.ID, menu.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateQty(user.ID, menu.ID, 5))
	assert.ErrorIs(t, svc.UpdateQty(user.ID, menu.ID, 9), ErrInsufficientStock)

	total, err := svc.Total(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5*15000, total)

	require.NoError(t, svc.Remove(user.ID, menu.ID))
	assert.ErrorIs(t, svc.Remove(user.ID, menu.ID), gorm.ErrRecordNotFound)

	items, _, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)
	m1 := createMenu(t, db, "Mie Ayam", 12000, 10)
	m2 := createMenu(t, db, "Es Jeruk", 6000, 10)

	_, err := svc.Add(user.ID, m1.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, m2.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(user.ID))

	total, err := svc.Total(user.ID)
	require.NoError(t, err)
	assert.Zero(t, total)
}
