package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
)

// Ensure ProductStore implements the interface.
var _ driven.ProductStore = (*ProductStore)(nil)

// ProductStore is an in-memory implementation of driven.ProductStore.
type ProductStore struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	nextID   int64
}

// NewProductStore creates a new in-memory product store.
func NewProductStore() *ProductStore {
	return &ProductStore{
		products: make(map[int64]domain.Product),
	}
}

// Add stores a product under a fresh ID.
func (s *ProductStore) Add(_ context.Context, p domain.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	p.ID = s.nextID
	s.products[p.ID] = p
	return p.ID, nil
}

// Get retrieves a product by ID if it belongs to ownerEmail.
func (s *ProductStore) Get(_ context.Context, id int64, ownerEmail string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok || !p.OwnedBy(ownerEmail) {
		return nil, &domain.StoreError{Op: "getting product", Kind: domain.ErrNotFound}
	}
	return &p, nil
}

// List returns all products ordered by ID.
func (s *ProductStore) List(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(domain.Product) bool { return true }), nil
}

// ListByOwner returns the products owned by ownerEmail ordered by ID.
func (s *ProductStore) ListByOwner(_ context.Context, ownerEmail string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p domain.Product) bool { return p.OwnerEmail == ownerEmail }), nil
}

// Update rewrites the product matching p.ID and p.OwnerEmail.
func (s *ProductStore) Update(_ context.Context, p domain.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[p.ID]
	if !ok || !existing.OwnedBy(p.OwnerEmail) {
		return 0, nil
	}
	existing.Name = p.Name
	existing.Price = p.Price
	existing.Description = p.Description
	existing.Category = p.Category
	s.products[p.ID] = existing
	return 1, nil
}

// Delete removes the product matching id and ownerEmail.
func (s *ProductStore) Delete(_ context.Context, id int64, ownerEmail string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.products[id]
	if !ok || !existing.OwnedBy(ownerEmail) {
		return 0, nil
	}
	delete(s.products, id)
	return 1, nil
}

// collect must be called with the lock held.
func (s *ProductStore) collect(keep func(domain.Product) bool) []domain.Product {
	result := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if keep(p) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
