package ports

import (
	"context"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// CreateProductInput carries the raw form fields for creating a product.
type CreateProductInput struct {
	Name     string  `validate:"notblank"`
	Price    float64 `validate:"gte=0"`
	Quantity int     `validate:"gte=0"`
}

// UpdateProductInput carries the raw form fields for a full-replace update.
type UpdateProductInput struct {
	ID       int     `validate:"gt=0"`
	Name     string  `validate:"notblank"`
	Price    float64 `validate:"gte=0"`
	Quantity int     `validate:"gte=0"`
}

// ProductsService is the use-case surface the presentation layer calls.
// Every method validates its input before touching the repository and never
// lets a raw error escape unclassified.
type ProductsService interface {
	// List fetches products and drops entries with a blank name. Zero valid
	// products is reported as an error, not an empty success.
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}
