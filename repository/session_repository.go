package repository

import (
	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *entity.Session) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) Find(id string) (*entity.Session, error) {
	var s entity.Session
	if err := r.DB.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the session row; the matching token dies with it.
func (r *SessionRepository) Delete(id string) (int64, error) {
	res := r.DB.Where("id = ?", id).Delete(&entity.Session{})
	return res.RowsAffected, res.Error
}

// DeleteExpired clears stale rows, used opportunistically at login.
func (r *SessionRepository) DeleteExpired() error {
	return r.DB.Where("expires_at < CURRENT_TIMESTAMP").Delete(&entity.Session{}).Error
}
