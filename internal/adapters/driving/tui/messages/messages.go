// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSignIn is the credential entry screen.
	ViewSignIn ViewType = iota
	// ViewSignUp is the account registration screen.
	ViewSignUp
	// ViewProducts lists the signed-in user's products.
	ViewProducts
	// ViewProductForm adds or edits one product.
	ViewProductForm
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSignIn:
		return "sign_in"
	case ViewSignUp:
		return "sign_up"
	case ViewProducts:
		return "products"
	case ViewProductForm:
		return "product_form"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SessionResolved carries the session found at startup.
// Email is empty when nobody is signed in.
type SessionResolved struct {
	Email string
	Err   error
}

// SignedIn signals a sign-in attempt finished.
type SignedIn struct {
	Email string
	Err   error
}

// SignedUp signals a registration attempt finished.
type SignedUp struct {
	Email string
	Err   error
}

// SignedOut signals the current user was cleared.
type SignedOut struct {
	Err error
}

// ProductsLoaded carries the current user's products.
type ProductsLoaded struct {
	Products []domain.Product
	Err      error
}

// EditProduct opens the product form. A nil Product means a new one.
type EditProduct struct {
	Product *domain.Product
}

// ProductSaved signals an add or update finished.
// Affected is zero when an update matched no product of the owner.
type ProductSaved struct {
	ID       int64
	Created  bool
	Affected int64
	Err      error
}

// ProductDeleted signals a delete finished.
type ProductDeleted struct {
	ID       int64
	Affected int64
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
