package session

import (
	"sync"
	"time"

	"github.com/callshield/callshield-backend/internal/models"
	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. Logins are lost on
// restart; intended for tests and single-node demo runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]models.Session)}
}

func (s *MemoryStore) Create(userID uint, ttl time.Duration) (*models.Session, error) {
	now := time.Now()
	sess := models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return &sess, nil
}

func (s *MemoryStore) Get(id uuid.UUID) (*models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if sess.Expired() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Destroy(id uuid.UUID) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteExpired() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, sess := range s.sessions {
		if sess.Expired() {
			delete(s.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}
