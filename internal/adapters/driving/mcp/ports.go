package mcp

import (
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// User manages accounts.
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
