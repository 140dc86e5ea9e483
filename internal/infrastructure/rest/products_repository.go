package rest

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// ProductsRepository implements ports.ProductsRepository against the remote
// API. Every method classifies raw client failures into the domain taxonomy
// before they leave this layer.
type ProductsRepository struct {
	api    API
	logger zerolog.Logger
}

func NewProductsRepository(api API, logger zerolog.Logger) *ProductsRepository {
	return &ProductsRepository{api: api, logger: logger}
}

// List fetches all products. The empty sentinel (data: 0 or null) yields an
// empty slice; server order is preserved otherwise.
func (r *ProductsRepository) List(ctx context.Context) ([]domain.Product, error) {
	doc, err := r.api.ListProducts(ctx)
	if err != nil {
		return nil, classify(err)
	}

	if doc.Data.Empty {
		return []domain.Product{}, nil
	}

	products := make([]domain.Product, 0, len(doc.Data.Items))
	for _, res := range doc.Data.Items {
		products = append(products, productToDomain(res))
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	doc, err := r.api.GetProduct(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if doc.Data == nil {
		return nil, domain.NewNotFound("product with id %d not found", id)
	}

	product := productToDomain(*doc.Data)
	return &product, nil
}

func (r *ProductsRepository) Create(ctx context.Context, name string, price float64, quantity int) (*domain.Product, error) {
	doc, err := r.api.CreateProduct(ctx, ProductRequest{Name: name, Price: price, Quantity: quantity})
	if err != nil {
		return nil, classify(err)
	}
	if doc.Data == nil {
		return nil, domain.NewMalformed("server returned no product data", nil)
	}

	product := productToDomain(*doc.Data)
	return &product, nil
}

func (r *ProductsRepository) Update(ctx context.Context, id int, name string, price float64, quantity int) (*domain.Product, error) {
	doc, err := r.api.UpdateProduct(ctx, id, ProductRequest{Name: name, Price: price, Quantity: quantity})
	if err != nil {
		return nil, classify(err)
	}
	if doc.Data == nil {
		return nil, domain.NewMalformed("server returned no product data", nil)
	}

	product := productToDomain(*doc.Data)
	return &product, nil
}

// Delete reports success as a bare boolean. The underlying cause of a failure
// is logged and then dropped; callers only ever learn true or false.
func (r *ProductsRepository) Delete(ctx context.Context, id int) bool {
	if err := r.api.DeleteProduct(ctx, id); err != nil {
		r.logger.Warn().Err(err).Int("id", id).Msg("product delete failed")
		return false
	}
	return true
}
