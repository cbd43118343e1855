package driving

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// UserService manages user accounts.
type UserService interface {
	// Register creates an account. The password is hashed before it is stored.
	// Returns domain.ErrDuplicateEmail if the email is taken.
	Register(ctx context.Context, email, password string) error

	// Get looks up an account by exact email.
	// Returns nil and no error if it does not exist.
	Get(ctx context.Context, email string) (*domain.User, error)

	// Authenticate checks credentials and returns the matching account.
	// Returns domain.ErrInvalidCredentials on unknown email or wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
