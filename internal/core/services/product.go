package services

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driving"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// Ensure ProductService implements the interface.
var _ driving.ProductService = (*ProductService)(nil)

// ProductService manages the product catalog.
// Field completeness is a form rule and is not checked here.
type ProductService struct {
	products driven.ProductStore
}

// NewProductService creates a new product service.
func NewProductService(products driven.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// Add creates a product and returns its ID.
func (s *ProductService) Add(ctx context.Context, p domain.Product) (int64, error) {
	if s.products == nil {
		return 0, domain.ErrNotImplemented
	}
	id, err := s.products.Add(ctx, p)
	if err != nil {
		return 0, err
	}
	logger.Debug("added product %d for %s", id, p.OwnerEmail)
	return id, nil
}

// Get returns one product owned by ownerEmail.
func (s *ProductService) Get(ctx context.Context, id int64, ownerEmail string) (*domain.Product, error) {
	if s.products == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.products.Get(ctx, id, ownerEmail)
}

// List returns every product.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.products == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.products.List(ctx)
}

// ListByOwner returns the products owned by ownerEmail.
func (s *ProductService) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Product, error) {
	if s.products == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.products.ListByOwner(ctx, ownerEmail)
}

// Update rewrites the product matching p.ID and p.OwnerEmail.
func (s *ProductService) Update(ctx context.Context, p domain.Product) (int64, error) {
	if s.products == nil {
		return 0, domain.ErrNotImplemented
	}
	affected, err := s.products.Update(ctx, p)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		logger.Debug("update of product %d for %s matched nothing", p.ID, p.OwnerEmail)
	}
	return affected, nil
}

// Delete removes the product matching id and ownerEmail.
func (s *ProductService) Delete(ctx context.Context, id int64, ownerEmail string) (int64, error) {
	if s.products == nil {
		return 0, domain.ErrNotImplemented
	}
	affected, err := s.products.Delete(ctx, id, ownerEmail)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		logger.Debug("delete of product %d for %s matched nothing", id, ownerEmail)
	}
	return affected, nil
}
