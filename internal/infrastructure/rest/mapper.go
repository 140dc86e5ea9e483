package rest

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// Sentinel values substituted when the server sends a user record with
// missing or blank fields.
const (
	defaultUserID    = 1
	defaultUserName  = "Usuario"
	defaultUserEmail = "no-email@example.com"
)

// MapOptions controls user mapping. The default (non-strict) policy is
// deliberate: a malformed record must never fail a list render, so blank
// fields are replaced with sentinels and mapping always succeeds. Strict mode
// is for callers that would rather see the substitution than hide it.
type MapOptions struct {
	Strict bool
}

// productToDomain copies the wrapped record into the domain entity. Products
// get no defaulting; the server is trusted to send complete records.
func productToDomain(res ProductResource) domain.Product {
	return domain.Product{
		ID:       res.ID,
		Name:     res.Attributes.Name,
		Price:    res.Attributes.Price,
		Quantity: res.Attributes.Quantity,
	}
}

// userToDomain converts a wrapped user record defensively: fields are
// trimmed, a non-positive id becomes defaultUserID, and blank name/email are
// replaced with sentinels. In the default mode the error is always nil. In
// strict mode a substitution is reported as a malformed-response error, but
// the returned User is the same best-effort entity either way.
func userToDomain(res UserResource, opts MapOptions, logger zerolog.Logger) (domain.User, error) {
	substituted := false

	id := res.ID
	if id <= 0 {
		logger.Warn().Int("id", res.ID).Msg("user record has invalid id, substituting default")
		id = defaultUserID
		substituted = true
	}

	fullName := strings.TrimSpace(res.Attributes.FullName)
	if fullName == "" {
		logger.Warn().Int("id", res.ID).Msg("user record has blank full name, substituting default")
		fullName = defaultUserName
		substituted = true
	}

	email := strings.TrimSpace(res.Attributes.Email)
	if email == "" {
		logger.Warn().Int("id", res.ID).Msg("user record has blank email, substituting default")
		email = defaultUserEmail
		substituted = true
	}

	user := domain.User{ID: id, FullName: fullName, Email: email}
	if opts.Strict && substituted {
		return user, domain.NewMalformed("user record required field substitutions", nil)
	}
	return user, nil
}
