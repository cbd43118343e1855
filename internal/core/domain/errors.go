package domain

import (
	"errors"
	"fmt"
)

// Storage errors describe why a persistence call failed.
// They are matched with errors.Is against a *StoreError.
var (
	// ErrStoreUnavailable indicates the store handle is not initialised or has been closed.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConstraintViolation indicates the store rejected a write because of a schema constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDuplicateEmail indicates a user with the same email already exists.
	ErrDuplicateEmail = fmt.Errorf("%w: email already registered", ErrConstraintViolation)

	// ErrStoreIO indicates an underlying read or write failure.
	ErrStoreIO = errors.New("store i/o failure")

	// ErrNotFound indicates a requested entity does not exist.
	// Lookups by email return a nil entity instead of this error.
	ErrNotFound = errors.New("not found")
)

// Service errors represent business logic failures.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordMismatch indicates the password confirmation does not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrNotSignedIn indicates an operation needs a current user but none is set.
	ErrNotSignedIn = errors.New("no user is signed in")

	// ErrRateLimited indicates too many sign-in attempts in a short period.
	ErrRateLimited = errors.New("too many sign-in attempts")

	// ErrNotImplemented indicates a required collaborator was not configured.
	ErrNotImplemented = errors.New("not implemented")
)

// StoreError wraps a failed storage operation.
// Kind is one of the storage sentinels above; Err is the driver error, if any.
type StoreError struct {
	Op   string
	Kind error
	Err  error
}

// Error returns the operation name followed by the driver message.
func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the driver error to errors.Is and errors.As.
func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
