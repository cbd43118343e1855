package mcp

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// mockUserService is a mock implementation of driving.UserService.
type mockUserService struct {
	user *domain.User
	err  error
}

func (m *mockUserService) Register(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockUserService) Get(_ context.Context, _ string) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockUserService) Authenticate(_ context.Context, _, _ string) (*domain.User, error) {
	return m.user, m.err
}

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	session *domain.Session
	user    *domain.User
	err     error
}

func (m *mockSessionService) SignIn(_ context.Context, _, _ string) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockSessionService) SetCurrent(_ context.Context, email string) error {
	if m.err != nil {
		return m.err
	}
	m.session = &domain.Session{ID: 1, Email: email}
	return nil
}

func (m *mockSessionService) Current(_ context.Context) (*domain.Session, error) {
	return m.session, m.err
}

func (m *mockSessionService) SignOut(_ context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.session = nil
	return nil
}

// mockProductService is a mock implementation of driving.ProductService.
type mockProductService struct {
	products []domain.Product
	product  *domain.Product
	id       int64
	affected int64
	err      error

	// lastOwner records the owner passed to scoped calls.
	lastOwner string
}

func (m *mockProductService) Add(_ context.Context, _ domain.Product) (int64, error) {
	return m.id, m.err
}

func (m *mockProductService) Get(_ context.Context, _ int64, ownerEmail string) (*domain.Product, error) {
	m.lastOwner = ownerEmail
	return m.product, m.err
}

func (m *mockProductService) List(_ context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductService) ListByOwner(_ context.Context, ownerEmail string) ([]domain.Product, error) {
	m.lastOwner = ownerEmail
	return m.products, m.err
}

func (m *mockProductService) Update(_ context.Context, p domain.Product) (int64, error) {
	m.lastOwner = p.OwnerEmail
	return m.affected, m.err
}

func (m *mockProductService) Delete(_ context.Context, _ int64, ownerEmail string) (int64, error) {
	m.lastOwner = ownerEmail
	return m.affected, m.err
}

// newMockPorts returns ports with empty mocks for every service.
func newMockPorts() (*Ports, *mockUserService, *mockSessionService, *mockProductService) {
	u, s, p := &mockUserService{}, &mockSessionService{}, &mockProductService{}
	return &Ports{User: u, Session: s, Product: p}, u, s, p
}
