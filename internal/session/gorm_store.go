package session

import (
	"errors"
	"time"

	"github.com/callshield/callshield-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore persists sessions in the sessions table, so logins survive
// process restarts.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(userID uint, ttl time.Duration) (*models.Session, error) {
	sess := models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) Get(id uuid.UUID) (*models.Session, error) {
	var sess models.Session
	err := s.db.Where("id = ? AND expires_at > ?", id, time.Now()).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) Destroy(id uuid.UUID) error {
	return s.db.Delete(&models.Session{}, "id = ?", id).Error
}

func (s *GormStore) DeleteExpired() (int64, error) {
	result := s.db.Where("expires_at <= ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
