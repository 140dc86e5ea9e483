// Package stubapi is an in-memory reference implementation of the remote
// inventory API's wire protocol: JSON-API envelopes with the numeric-zero
// empty sentinel, bearer tokens issued through the Authorization response
// header, and the status codes the client's error tables expect. It backs the
// integration tests and doubles as a local development server.
package stubapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Server owns the in-memory store and the echo router.
type Server struct {
	Echo  *echo.Echo
	store *Store

	secret string
	logger zerolog.Logger
}

// New builds a ready-to-serve stub API. secret signs the session tokens.
func New(secret string, logger zerolog.Logger) *Server {
	s := &Server{
		store:  NewStore(),
		secret: secret,
		logger: logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.HTTPErrorHandler = newHTTPErrorHandler(logger)

	withAuth := auth(secret)

	e.GET("/v1/products", s.listProducts)
	e.GET("/v1/products/:id", s.getProduct)
	e.POST("/v1/products", s.createProduct, withAuth)
	e.PUT("/v1/products/:id", s.updateProduct, withAuth)
	e.DELETE("/v1/products/:id", s.deleteProduct, withAuth)

	e.GET("/v1/users", s.listUsers)
	e.GET("/v1/users/:id", s.getUser)
	e.POST("/v1/users", s.registerUser)
	e.POST("/v1/users/login", s.loginUser)
	e.PUT("/v1/users/:id", s.updateUser, withAuth)
	e.DELETE("/v1/users/:id", s.deleteUser, withAuth)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.Echo = e
	return s
}

// Store exposes the backing store so tests can seed records directly.
func (s *Server) Store() *Store {
	return s.store
}

// newHTTPErrorHandler renders every error echo surfaces (bind failures,
// router 404s, middleware rejections) in the API's error envelope.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
		} else {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		_ = c.JSON(code, errorEnvelope(msg))
	}
}
