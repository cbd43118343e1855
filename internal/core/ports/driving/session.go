package driving

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// SessionService manages the single current-user slot.
type SessionService interface {
	// SignIn authenticates and makes the account the current user.
	SignIn(ctx context.Context, email, password string) (*domain.User, error)

	// SetCurrent makes email the current user without checking credentials.
	SetCurrent(ctx context.Context, email string) error

	// Current returns the active session, or nil if nobody is signed in.
	Current(ctx context.Context) (*domain.Session, error)

	// SignOut clears the current user. Idempotent.
	SignOut(ctx context.Context) error
}
