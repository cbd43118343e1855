package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/shopdesk/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// DatabaseFile is the name of the SQLite file inside the data directory.
const DatabaseFile = "shopdesk.db"

// Store is a unified SQLite-based storage that provides access to
// all store interfaces through wrapper types.
//
// Every operation holds mu for its full duration.
type Store struct {
	mu    sync.Mutex
	db    *sql.DB
	path  string
	ready bool
}

// NewStore creates a new SQLite store at the specified data directory
// and applies the schema. If dataDir is empty, defaults to
// ~/.shopdesk/data/shopdesk.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".shopdesk", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, &domain.StoreError{Op: "creating data directory", Kind: domain.ErrStoreUnavailable, Err: err}
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, &domain.StoreError{Op: "opening database", Kind: domain.ErrStoreUnavailable, Err: err}
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.Initialize(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Initialize applies the baseline schema. Calls after the first successful
// one are no-ops.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return &domain.StoreError{Op: "initialising store", Kind: domain.ErrStoreUnavailable}
	}
	if s.ready {
		return nil
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrations.FS)
	if err != nil {
		return &domain.StoreError{Op: "loading schema", Kind: domain.ErrStoreUnavailable, Err: err}
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return &domain.StoreError{Op: "applying schema", Kind: domain.ErrStoreUnavailable, Err: err}
	}
	for _, r := range results {
		logger.Debug("applied schema version %d (%s)", r.Source.Version, r.Duration)
	}

	// The schema runner is done with the pool; from here on a single
	// connection serves every statement.
	s.db.SetMaxOpenConns(1)
	s.ready = true
	return nil
}

// Close closes the database connection. Operations after Close fail with
// domain.ErrStoreUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.ready = false
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// UserStore returns a UserStore interface backed by this store.
func (s *Store) UserStore() driven.UserStore {
	return &userStore{store: s}
}

// SessionStore returns a SessionStore interface backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// ProductStore returns a ProductStore interface backed by this store.
func (s *Store) ProductStore() driven.ProductStore {
	return &productStore{store: s}
}

// withDB runs fn with the handle while holding the store lock.
// Errors returned by fn are classified into a *domain.StoreError.
func (s *Store) withDB(op string, fn func(db *sql.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil || !s.ready {
		return &domain.StoreError{Op: op, Kind: domain.ErrStoreUnavailable}
	}
	if err := fn(s.db); err != nil {
		return classify(op, err)
	}
	return nil
}

// ==================== UserStore ====================

// Verify interface compliance.
var _ driven.UserStore = (*userStore)(nil)

type userStore struct {
	store *Store
}

// Create inserts a new user. The password is stored as given.
func (u *userStore) Create(ctx context.Context, email, password string) error {
	const op = "creating user"
	return u.store.withDB(op, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, `INSERT INTO users (email, password) VALUES (?, ?)`, email, password)
		if isUniqueViolation(err) {
			return &domain.StoreError{Op: op, Kind: domain.ErrDuplicateEmail, Err: err}
		}
		return err
	})
}

// Get retrieves a user by exact email. Returns nil, nil when absent.
func (u *userStore) Get(ctx context.Context, email string) (*domain.User, error) {
	var user *domain.User
	err := u.store.withDB("getting user", func(db *sql.DB) error {
		var found domain.User
		err := db.QueryRowContext(ctx,
			`SELECT id, email, password FROM users WHERE email = ?`, email,
		).Scan(&found.ID, &found.Email, &found.Password)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		user = &found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ==================== SessionStore ====================

// Verify interface compliance.
var _ driven.SessionStore = (*sessionStore)(nil)

type sessionStore struct {
	store *Store
}

// Set replaces the session row with one for email.
// Both statements run under the store lock without a transaction.
func (s *sessionStore) Set(ctx context.Context, email string) error {
	return s.store.withDB("setting current user", func(db *sql.DB) error {
		if _, err := db.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, `INSERT INTO session (email) VALUES (?)`, email)
		return err
	})
}

// Current returns the session row, or nil, nil when nobody is signed in.
func (s *sessionStore) Current(ctx context.Context) (*domain.Session, error) {
	var session *domain.Session
	err := s.store.withDB("getting current user", func(db *sql.DB) error {
		var (
			id    int64
			email sql.NullString
		)
		err := db.QueryRowContext(ctx, `SELECT id, email FROM session LIMIT 1`).Scan(&id, &email)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}
		session = &domain.Session{ID: id, Email: email.String}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Clear removes every session row. Clearing an empty session is not an error.
func (s *sessionStore) Clear(ctx context.Context) error {
	return s.store.withDB("clearing current user", func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, `DELETE FROM session`)
		return err
	})
}
