package driven

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	// Create inserts a user. The password is stored exactly as given.
	// Returns domain.ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, email, password string) error

	// Get looks a user up by exact email match.
	// Returns nil and no error if no such user exists.
	Get(ctx context.Context, email string) (*domain.User, error)
}
