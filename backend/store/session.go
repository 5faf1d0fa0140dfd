package store

import (
	"sync"

	"learnhub/backend/models"
)

// SessionStore holds the current authenticated identity. Reads and writes go
// through deep copies so callers never share state with the published value.
// Constructed once at startup and never torn down.
type SessionStore struct {
	mu      sync.RWMutex
	current *models.User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Current returns a copy of the active identity, or nil when logged out.
func (s *SessionStore) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *SessionStore) Set(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u.Clone()
}

func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
