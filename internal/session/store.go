// Package session provides server-side login sessions behind a small
// store abstraction so the backing key-value layer stays pluggable.
package session

import (
	"errors"
	"log/slog"
	"time"

	"github.com/callshield/callshield-backend/internal/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown, destroyed or expired sessions.
var ErrNotFound = errors.New("session not found")

// Store manages sessions by id. Get never returns an expired session.
type Store interface {
	Create(userID uint, ttl time.Duration) (*models.Session, error)
	Get(id uuid.UUID) (*models.Session, error)
	Destroy(id uuid.UUID) error
	DeleteExpired() (int64, error)
}

// StartReaper runs an hourly goroutine that removes expired sessions.
func StartReaper(store Store, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := store.DeleteExpired()
				if err != nil {
					slog.Error("session reaper failed", "error", err)
				} else if deleted > 0 {
					slog.Info("expired sessions removed", "count", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
