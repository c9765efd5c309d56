package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/repository"
	"github.com/dontkeep/order-menu-backend/utils"
)

// AuthService owns register/login/logout and the session lifecycle.
type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	jwtSecret   string
	sessionTTL  time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   secret,
		sessionTTL:  ttl,
	}
}

type RegisterIn struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	PhoneNumber   string
	AddressDetail string
	Province      string
	City          string
	Regency       string
	District      string
}

// Register creates a customer account. Public registration never assigns
// any other role.
func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var customerRole entity.Role
	if err := s.userRepo.DB.Where("name = ?", entity.RoleCustomer).First(&customerRole).Error; err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		AddressDetail: in.AddressDetail,
		Province:      in.Province,
		City:          in.City,
		Regency:       in.Regency,
		District:      in.District,
		RoleID:        customerRole.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials, creates a session row and returns a token
// bound to it. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.State != entity.StateActive {
		return "", nil, ErrAccountInactive
	}

	// housekeeping, failure is not fatal
	_ = s.sessionRepo.DeleteExpired()

	sessionID, err := newSessionID()
	if err != nil {
		return "", nil, err
	}
	session := &entity.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(sessionID, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout deletes the session row. A second logout with the same token finds
// nothing and fails.
func (s *AuthService) Logout(sessionID string) error {
	affected, err := s.sessionRepo.Delete(sessionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile accepts allow-listed fields only; email, role and password
// are never writable through this path.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	allowed := map[string]bool{
		"first_name": true, "last_name": true, "phone_number": true,
		"address_detail": true, "province": true, "city": true,
		"regency": true, "district": true,
	}
	filtered := map[string]any{}
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, ErrInvalidPayload
	}
	if err := s.userRepo.Update(userID, filtered); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
