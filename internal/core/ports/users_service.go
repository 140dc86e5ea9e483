package ports

import (
	"context"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// RegisterInput carries the raw registration form fields. Password is the
// pre-hashed credential string the caller supplies; only its length is
// checked here.
type RegisterInput struct {
	FullName string `validate:"notblank"`
	Email    string `validate:"required,email"`
	Password string `validate:"min=6"`
}

// LoginInput carries the raw login form fields.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UpdateUserInput carries the raw fields for a full-replace user update.
type UpdateUserInput struct {
	ID       int    `validate:"gt=0"`
	FullName string `validate:"notblank"`
	Email    string `validate:"required,email"`
	Password string `validate:"min=6"`
}

// UsersService is the use-case surface for user management and auth.
type UsersService interface {
	// List fetches users and drops entries with a blank email. Zero valid
	// users is reported as an error, not an empty success.
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.AuthSession, error)
	Login(ctx context.Context, input LoginInput) (*domain.AuthSession, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
