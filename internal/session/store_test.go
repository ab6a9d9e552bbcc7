package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/callshield/callshield-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStores(t *testing.T) map[string]Store {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "sessions-test.db")
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return map[string]Store{
		"memory":   NewMemoryStore(),
		"database": NewGormStore(db),
	}
}

func TestStoreCreateGetDestroy(t *testing.T) {
	t.Parallel()

	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			sess, err := store.Create(7, time.Hour)
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			if sess.ID == uuid.Nil {
				t.Fatalf("expected non-nil session id")
			}
			if sess.UserID != 7 {
				t.Fatalf("user id = %d, want 7", sess.UserID)
			}

			got, err := store.Get(sess.ID)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if got.ID != sess.ID || got.UserID != sess.UserID {
				t.Fatalf("got session %+v, want %+v", got, sess)
			}

			if err := store.Destroy(sess.ID); err != nil {
				t.Fatalf("destroy failed: %v", err)
			}
			if _, err := store.Get(sess.ID); !errors.Is(err, ErrNotFound) {
				t.Fatalf("get after destroy error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreGetUnknownID(t *testing.T) {
	t.Parallel()

	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(uuid.New()); !errors.Is(err, ErrNotFound) {
				t.Fatalf("error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreSkipsExpiredSessions(t *testing.T) {
	t.Parallel()

	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			sess, err := store.Create(1, -time.Minute)
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			if _, err := store.Get(sess.ID); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expired get error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreDeleteExpired(t *testing.T) {
	t.Parallel()

	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			live, err := store.Create(1, time.Hour)
			if err != nil {
				t.Fatalf("create live failed: %v", err)
			}
			if _, err := store.Create(2, -time.Minute); err != nil {
				t.Fatalf("create expired failed: %v", err)
			}
			if _, err := store.Create(3, -time.Hour); err != nil {
				t.Fatalf("create expired failed: %v", err)
			}

			deleted, err := store.DeleteExpired()
			if err != nil {
				t.Fatalf("delete expired failed: %v", err)
			}
			if deleted != 2 {
				t.Fatalf("deleted = %d, want 2", deleted)
			}
			if _, err := store.Get(live.ID); err != nil {
				t.Fatalf("live session removed: %v", err)
			}
		})
	}
}

func TestDestroyUnknownIDIsANoop(t *testing.T) {
	t.Parallel()

	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			if err := store.Destroy(uuid.New()); err != nil {
				t.Fatalf("destroy unknown id returned error: %v", err)
			}
		})
	}
}
