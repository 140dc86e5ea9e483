package presentation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
	"github.com/inventarioapp/inventory-client/internal/core/ports"
)

// ProductsState is the product list screen's state.
type ProductsState struct {
	Loading    bool
	Refreshing bool
	Products   []domain.Product
	Error      string
}

// ProductsController drives the product list screen: it calls the use cases
// and reduces their outcomes into the store. The screen converges by
// reloading the list after every mutation rather than patching it locally.
type ProductsController struct {
	svc    ports.ProductsService
	store  *Store[ProductsState]
	logger zerolog.Logger
}

func NewProductsController(svc ports.ProductsService, logger zerolog.Logger) *ProductsController {
	return &ProductsController{
		svc:    svc,
		store:  NewStore(ProductsState{}),
		logger: logger,
	}
}

func (c *ProductsController) State() *Store[ProductsState] {
	return c.store
}

// Load fetches the product list.
func (c *ProductsController) Load(ctx context.Context) {
	c.store.Update(func(s ProductsState) ProductsState {
		s.Loading = true
		s.Error = ""
		return s
	})

	products, err := c.svc.List(ctx)
	c.store.Update(func(s ProductsState) ProductsState {
		s.Loading = false
		s.Refreshing = false
		if err != nil {
			s.Error = err.Error()
			return s
		}
		s.Products = products
		s.Error = ""
		return s
	})
}

// Refresh is Load with the pull-to-refresh flag set.
func (c *ProductsController) Refresh(ctx context.Context) {
	c.store.Update(func(s ProductsState) ProductsState {
		s.Refreshing = true
		return s
	})
	c.Load(ctx)
}

// Create submits a new product and reloads the list on success. The error is
// returned for the form screen to display inline.
func (c *ProductsController) Create(ctx context.Context, input ports.CreateProductInput) error {
	if _, err := c.svc.Create(ctx, input); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}

// Update submits a full-replace edit and reloads the list on success.
func (c *ProductsController) Update(ctx context.Context, input ports.UpdateProductInput) error {
	if _, err := c.svc.Update(ctx, input); err != nil {
		return err
	}
	c.Load(ctx)
	return nil
}

// Delete removes a product and reloads the list; a failure lands in the
// screen state instead of being returned.
func (c *ProductsController) Delete(ctx context.Context, id int) {
	if err := c.svc.Delete(ctx, id); err != nil {
		c.logger.Warn().Err(err).Int("id", id).Msg("delete product failed")
		c.store.Update(func(s ProductsState) ProductsState {
			s.Error = err.Error()
			return s
		})
		return
	}
	c.Load(ctx)
}
