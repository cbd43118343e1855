package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
)

// Ensure UserStore implements the interface.
var _ driven.UserStore = (*UserStore)(nil)

// UserStore is an in-memory implementation of driven.UserStore.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	nextID int64
}

// NewUserStore creates a new in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]domain.User),
	}
}

// Create stores a new user. Emails are unique.
func (s *UserStore) Create(_ context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return &domain.StoreError{
			Op:   "creating user",
			Kind: domain.ErrDuplicateEmail,
			Err:  errors.New("UNIQUE constraint failed: users.email"),
		}
	}
	s.nextID++
	s.users[email] = domain.User{ID: s.nextID, Email: email, Password: password}
	return nil
}

// Get retrieves a user by exact email. Returns nil, nil when absent.
func (s *UserStore) Get(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
