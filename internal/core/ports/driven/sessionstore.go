package driven

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// SessionStore persists the single current-user slot.
// At most one session exists at any time.
type SessionStore interface {
	// Set replaces any existing session with one for email.
	Set(ctx context.Context, email string) error

	// Current returns the active session.
	// Returns nil and no error if nobody is signed in.
	Current(ctx context.Context) (*domain.Session, error)

	// Clear removes the session. It is a no-op when none exists.
	Clear(ctx context.Context) error
}
