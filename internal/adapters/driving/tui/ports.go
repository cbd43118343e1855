// Package tui provides the interactive terminal shell for shopdesk:
// sign-in, sign-up and the signed-in product manager.
package tui

import (
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// User registers and looks up accounts.
	User driving.UserService

	// Session tracks the signed-in user.
	Session driving.SessionService

	// Product manages the catalog.
	Product driving.ProductService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.User == nil {
		return ErrMissingUserService
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Product == nil {
		return ErrMissingProductService
	}
	return nil
}
