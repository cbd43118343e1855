package tui

import "errors"

// ErrMissingUserService is returned when the user service is not provided.
var ErrMissingUserService = errors.New("tui: user service is required")

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrMissingProductService is returned when the product service is not provided.
var ErrMissingProductService = errors.New("tui: product service is required")
