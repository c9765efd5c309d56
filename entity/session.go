package entity

import (
	"time"
)

// Session is the server-side half of a login. The row is the sole source of
// truth for logout: a signed token whose session row is gone or expired is
// rejected.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64" json:"sessionId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	User      User      `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
}
