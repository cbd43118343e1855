// Package mcp provides an MCP (Model Context Protocol) server adapter for shopdesk.
// Each data operation is exposed as a tool named after it, so a presentation
// layer can dispatch by name and receive JSON results or error text.
package mcp

import "errors"

// Errors returned when a required service is not provided.
var (
	ErrMissingUserService    = errors.New("mcp: user service is required")
	ErrMissingSessionService = errors.New("mcp: session service is required")
	ErrMissingProductService = errors.New("mcp: product service is required")
)
