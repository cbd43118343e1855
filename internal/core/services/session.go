package services

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages who is signed in.
type SessionService struct {
	sessions driven.SessionStore
	users    driving.UserService
}

// NewSessionService creates a new session service.
func NewSessionService(sessions driven.SessionStore, users driving.UserService) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
	}
}

// SignIn authenticates and records the account as the current user.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	if s.sessions == nil || s.users == nil {
		return nil, domain.ErrNotImplemented
	}
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, user.Email); err != nil {
		return nil, err
	}
	logger.Info("signed in as %s", user.Email)
	return user, nil
}

// SetCurrent records email as the current user. The email is not checked
// against registered accounts.
func (s *SessionService) SetCurrent(ctx context.Context, email string) error {
	if s.sessions == nil {
		return domain.ErrNotImplemented
	}
	return s.sessions.Set(ctx, email)
}

// Current returns the active session, or nil when nobody is signed in.
func (s *SessionService) Current(ctx context.Context) (*domain.Session, error) {
	if s.sessions == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.sessions.Current(ctx)
}

// SignOut clears the current user.
func (s *SessionService) SignOut(ctx context.Context) error {
	if s.sessions == nil {
		return domain.ErrNotImplemented
	}
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	logger.Info("signed out")
	return nil
}
