package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
	"github.com/inventarioapp/inventory-client/internal/core/ports"
)

// ProductsService implements the product use cases: validate the caller's
// fields, delegate to the repository, and pass repository failures through
// unchanged.
type ProductsService struct {
	repo     ports.ProductsRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewProductsService(repo ports.ProductsRepository, logger zerolog.Logger) *ProductsService {
	return &ProductsService{repo: repo, validate: newValidator(), logger: logger}
}

// List fetches all products and drops entries with a blank name. An empty
// result after filtering is reported as an error: the screens never render
// an empty product list.
func (s *ProductsService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	valid := products[:0:0]
	for _, p := range products {
		if strings.TrimSpace(p.Name) != "" {
			valid = append(valid, p)
		}
	}

	if len(valid) == 0 {
		return nil, domain.NewNotFound("no valid products found")
	}
	return valid, nil
}

func (s *ProductsService) Get(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, domain.NewValidation("invalid product id")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProductsService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := checkInput(s.validate, input); err != nil {
		return nil, err
	}

	product, err := s.repo.Create(ctx, input.Name, input.Price, input.Quantity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *ProductsService) Update(ctx context.Context, input ports.UpdateProductInput) (*domain.Product, error) {
	if err := checkInput(s.validate, input); err != nil {
		return nil, err
	}

	product, err := s.repo.Update(ctx, input.ID, input.Name, input.Price, input.Quantity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", product.ID).Msg("product updated")
	return product, nil
}

// Delete removes a product. The repository only reports a boolean, so every
// underlying failure surfaces as the same generic message here.
func (s *ProductsService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.NewValidation("invalid product id")
	}

	if !s.repo.Delete(ctx, id) {
		return &domain.Error{Kind: domain.KindUnexpected, Message: "could not delete the product"}
	}

	s.logger.Info().Int("id", id).Msg("product deleted")
	return nil
}
