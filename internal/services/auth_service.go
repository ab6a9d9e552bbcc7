package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/callshield/callshield-backend/internal/models"
	"github.com/callshield/callshield-backend/internal/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUsernameRequired = errors.New("username is required")

// AuthService implements demo-mode login: a username is the whole
// credential, and an unseen username provisions a new account.
type AuthService struct {
	db         *gorm.DB
	store      session.Store
	sessionTTL time.Duration
}

func NewAuthService(db *gorm.DB, store session.Store, sessionTTL time.Duration) *AuthService {
	return &AuthService{db: db, store: store, sessionTTL: sessionTTL}
}

// Login resolves or provisions the user and opens a session. A new
// user and its default settings row are created as one transaction.
func (s *AuthService) Login(username string) (*models.User, *models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil, ErrUsernameRequired
	}

	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.provision(username)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	sess, err := s.store.Create(user.ID, s.sessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &user, sess, nil
}

func (s *AuthService) provision(username string) (models.User, error) {
	user := models.User{
		Username:    username,
		DisplayName: username,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		settings := models.DefaultSettings(user.ID)
		return tx.Create(&settings).Error
	})
	return user, err
}

// Logout destroys the server-side session.
func (s *AuthService) Logout(sessionID uuid.UUID) error {
	return s.store.Destroy(sessionID)
}
