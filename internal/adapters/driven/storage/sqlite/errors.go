package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// classify wraps a driver error in a *domain.StoreError whose Kind tells
// callers what went wrong. Errors that are already classified pass through.
func classify(op string, err error) error {
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.StoreError{Op: op, Kind: domain.ErrNotFound}
	}
	if errors.Is(err, sql.ErrConnDone) {
		return &domain.StoreError{Op: op, Kind: domain.ErrStoreUnavailable, Err: err}
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			return &domain.StoreError{Op: op, Kind: domain.ErrConstraintViolation, Err: err}
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
			return &domain.StoreError{Op: op, Kind: domain.ErrStoreUnavailable, Err: err}
		}
	}

	return &domain.StoreError{Op: op, Kind: domain.ErrStoreIO, Err: err}
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// Extended result codes can be off for some builds.
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(sqliteErr.Error(), "UNIQUE")
}
