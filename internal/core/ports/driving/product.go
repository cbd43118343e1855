package driving

import (
	"context"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// ProductService manages the product catalog.
// Update and Delete report how many rows changed so callers can tell
// "nothing matched" apart from success.
type ProductService interface {
	// Add creates a product for p.OwnerEmail and returns its ID.
	Add(ctx context.Context, p domain.Product) (int64, error)

	// Get returns one product owned by ownerEmail.
	Get(ctx context.Context, id int64, ownerEmail string) (*domain.Product, error)

	// List returns all products across owners.
	List(ctx context.Context) ([]domain.Product, error)

	// ListByOwner returns products owned by ownerEmail.
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Product, error)

	// Update rewrites the product matching p.ID and p.OwnerEmail.
	Update(ctx context.Context, p domain.Product) (int64, error)

	// Delete removes the product matching id and ownerEmail.
	Delete(ctx context.Context, id int64, ownerEmail string) (int64, error)
}
