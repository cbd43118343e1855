package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// It holds at most one session.
type SessionStore struct {
	mu      sync.RWMutex
	current *domain.Session
	nextID  int64
}

// NewSessionStore creates a new, empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Set replaces the current session.
func (s *SessionStore) Set(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.current = &domain.Session{ID: s.nextID, Email: email}
	return nil
}

// Current returns a copy of the session, or nil when empty.
func (s *SessionStore) Current(_ context.Context) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, nil
	}
	session := *s.current
	return &session, nil
}

// Clear removes the session.
func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
