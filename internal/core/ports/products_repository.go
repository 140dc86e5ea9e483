package ports

import (
	"context"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// ProductsRepository defines the data-access operations for products.
// Implementations are the boundary that converts transport and parse
// failures into domain errors; callers never see raw low-level errors.
type ProductsRepository interface {
	// List returns every product the server knows about, in server order.
	// A server-side "no products" sentinel yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves one product. Returns a not-found error carrying the
	// requested id when the server sends no data.
	GetByID(ctx context.Context, id int) (*domain.Product, error)

	// Create sends a new product and returns the server-assigned entity.
	// Field validation is the use case's job, not the repository's.
	Create(ctx context.Context, name string, price float64, quantity int) (*domain.Product, error)

	// Update replaces every field of an existing product.
	Update(ctx context.Context, id int, name string, price float64, quantity int) (*domain.Product, error)

	// Delete removes a product. Any failure is collapsed into false; the
	// underlying cause is logged but not propagated.
	Delete(ctx context.Context, id int) bool
}
