package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

func TestRegisterAssignsCustomerRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterIn{
		Email:     "Budi@Example.com",
		Password:  "rahasia123",
		FirstName: "Budi",
	})
	require.NoError(t, err)

	assert.Equal(t, "budi@example.com", user.Email)

	var role entity.Role
	require.NoError(t, db.First(&role, user.RoleID).Error)
	assert.Equal(t, entity.RoleCustomer, role.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterIn{Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	// same address with different casing is still a duplicate
	_, err = svc.Register(&RegisterIn{Email: "BUDI@example.com", Password: "lain456"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	createUser(t, db, "budi@example.com", entity.RoleCustomer)

	// unknown email and wrong password fail identically
	_, _, err := svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("budi@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	require.NoError(t, db.Model(user).Update("state", entity.StateInactive).Error)

	_, _, err := svc.Login("budi@example.com", "password123")
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestLoginCreatesSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	token, got, err := svc.Login("budi@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	var sessions []entity.Session
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].ExpiresAt.After(sessions[0].CreatedAt))
}

func TestLogoutKillsSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	_, _, err := svc.Login("budi@example.com", "password123")
	require.NoError(t, err)

	var session entity.Session
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&session).Error)

	require.NoError(t, svc.Logout(session.ID))

	// the session row is gone, so the still-valid token is dead
	var count int64
	require.NoError(t, db.Model(&entity.Session{}).Where("id = ?", session.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// a second logout with the same id finds nothing
	err = svc.Logout(session.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProfileAllowList(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	user := createUser(t, db, "budi@example.com", entity.RoleCustomer)

	got, err := svc.UpdateProfile(user.ID, map[string]any{
		"first_name": "Slamet",
		"email":      "hijack@example.com", // not writable here
	})
	require.NoError(t, err)
	assert.Equal(t, "Slamet", got.FirstName)
	assert.Equal(t, "budi@example.com", got.Email)

	// nothing writable at all is a bad payload
	_, err = svc.UpdateProfile(user.ID, map[string]any{"email": "hijack@example.com"})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
