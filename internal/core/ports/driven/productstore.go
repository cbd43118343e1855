package driven

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// ProductStore persists products.
// Mutations by id are scoped to the owner: a row only matches when both the
// id and the owner email agree. A mismatch affects zero rows and is not an error.
type ProductStore interface {
	// Add inserts a product and returns its assigned ID.
	// The ID field of p is ignored.
	Add(ctx context.Context, p domain.Product) (int64, error)

	// Get retrieves a product by ID if it belongs to ownerEmail.
	// Returns domain.ErrNotFound otherwise.
	Get(ctx context.Context, id int64, ownerEmail string) (*domain.Product, error)

	// List returns every product across all owners, in store order.
	List(ctx context.Context) ([]domain.Product, error)

	// ListByOwner returns the products belonging to ownerEmail.
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Product, error)

	// Update rewrites name, price, description and category of the row
	// matching p.ID and p.OwnerEmail. Returns the number of rows changed.
	Update(ctx context.Context, p domain.Product) (int64, error)

	// Delete removes the row matching id and ownerEmail.
	// Returns the number of rows removed.
	Delete(ctx context.Context, id int64, ownerEmail string) (int64, error)
}
