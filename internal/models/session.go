package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. The cookie only carries the
// session id; destroying the row invalidates the login immediately.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
