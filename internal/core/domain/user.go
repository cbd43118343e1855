package domain

import (
	"net/mail"
	"strings"
)

// User is a registered account.
type User struct {
	// ID is assigned by the store. Zero means not yet persisted.
	ID int64 `json:"id,omitempty"`

	// Email is the unique account key. Matching is exact and case-sensitive.
	Email string `json:"email"`

	// Password is the stored credential. Accounts created through the user
	// service hold an argon2id hash; older rows may hold clear text.
	Password string `json:"-"`
}

// Session is the single "currently signed in" record.
type Session struct {
	ID    int64  `json:"id,omitempty"`
	Email string `json:"email"`
}

// ValidateEmail reports whether email looks like a single bare address.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidInput
	}
	return nil
}
