package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// Ensure UserService implements the interface.
var _ driving.UserService = (*UserService)(nil)

// UserService manages accounts and checks credentials.
type UserService struct {
	users   driven.UserStore
	hasher  driven.PasswordHasher
	limiter *rate.Limiter
}

// NewUserService creates a new user service.
// Sign-in attempts are throttled with the default auth settings until
// SetRateLimit is called.
func NewUserService(users driven.UserStore, hasher driven.PasswordHasher) *UserService {
	defaults := domain.DefaultAppSettings()
	s := &UserService{
		users:  users,
		hasher: hasher,
	}
	s.SetRateLimit(defaults.Auth.MaxAttempts, time.Duration(defaults.Auth.RefillSeconds)*time.Second)
	return s
}

// SetRateLimit allows burst sign-in attempts, regaining one every refill.
func (s *UserService) SetRateLimit(burst int, refill time.Duration) {
	s.limiter = rate.NewLimiter(rate.Every(refill), burst)
}

// Register creates an account with a hashed password.
func (s *UserService) Register(ctx context.Context, email, password string) error {
	if s.users == nil || s.hasher == nil {
		return domain.ErrNotImplemented
	}
	if err := domain.ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: %q is not a valid email", err, email)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}

	// Check if already exists
	existing, err := s.users.Get(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateEmail
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := s.users.Create(ctx, email, hashed); err != nil {
		return err
	}
	logger.Info("registered user %s", email)
	return nil
}

// Get looks up an account by exact email.
func (s *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	if s.users == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.users.Get(ctx, email)
}

// Authenticate checks email and password against the stored credential.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if s.users == nil || s.hasher == nil {
		return nil, domain.ErrNotImplemented
	}
	if !s.limiter.Allow() {
		logger.Warn("sign-in throttled for %s", email)
		return nil, domain.ErrRateLimited
	}

	user, err := s.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Debug("sign-in for unknown email %s", email)
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(user.Password, password)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		logger.Debug("wrong password for %s", email)
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
