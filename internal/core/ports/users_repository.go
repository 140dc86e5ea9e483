package ports

import (
	"context"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// UsersRepository defines the data-access operations for users and auth.
type UsersRepository interface {
	// List returns every user, in server order. The "no users" sentinel
	// yields an empty slice.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves one user; not-found when the server sends no data.
	GetByID(ctx context.Context, id int) (*domain.User, error)

	// Register creates an account and returns the new user together with the
	// bearer token taken from the Authorization response header. The password
	// is an opaque pre-hashed string; it is forwarded as-is.
	Register(ctx context.Context, fullName, email, password string) (*domain.AuthSession, error)

	// Login authenticates and returns the user plus bearer token, with the
	// same header-extraction behaviour as Register.
	Login(ctx context.Context, email, password string) (*domain.AuthSession, error)

	// Update replaces an existing user's fields.
	Update(ctx context.Context, id int, fullName, email, password string) (*domain.User, error)

	// Delete removes a user. Failures collapse into false, same as products.
	Delete(ctx context.Context, id int) bool
}
