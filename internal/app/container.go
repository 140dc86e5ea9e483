// Package app wires the whole client together: configuration, logger, HTTP
// client, repositories, use cases, and screen controllers. Embedding
// applications build one Container at startup and hand the controllers to
// their UI layer.
package app

import (
	"github.com/inventarioapp/inventory-client/internal/core/ports"
	"github.com/inventarioapp/inventory-client/internal/core/service"
	"github.com/inventarioapp/inventory-client/internal/infrastructure/config"
	"github.com/inventarioapp/inventory-client/internal/infrastructure/rest"
	"github.com/inventarioapp/inventory-client/internal/presentation"
	"github.com/inventarioapp/inventory-client/pkg/logger"
)

type Container struct {
	Config *config.Config

	ProductsService ports.ProductsService
	UsersService    ports.UsersService

	Products *presentation.ProductsController
	Users    *presentation.UsersController
	Login    *presentation.LoginController
	Register *presentation.RegisterController
}

// New loads configuration from the environment and builds the dependency
// graph bottom-up.
func New() *Container {
	cfg := config.Load()

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	api := rest.NewHTTPClient(rest.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
		Logger:  log.With().Str("component", "http_client").Logger(),
	})

	productsRepo := rest.NewProductsRepository(api, log.With().Str("component", "products_repository").Logger())
	usersRepo := rest.NewUsersRepository(api, log.With().Str("component", "users_repository").Logger())

	productsSvc := service.NewProductsService(productsRepo, log)
	usersSvc := service.NewUsersService(usersRepo, log)

	return &Container{
		Config:          cfg,
		ProductsService: productsSvc,
		UsersService:    usersSvc,
		Products:        presentation.NewProductsController(productsSvc, log),
		Users:           presentation.NewUsersController(usersSvc, log),
		Login:           presentation.NewLoginController(usersSvc, log),
		Register:        presentation.NewRegisterController(usersSvc, log),
	}
}
