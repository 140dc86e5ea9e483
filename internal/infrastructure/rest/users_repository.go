package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// UsersRepository implements ports.UsersRepository against the remote API.
type UsersRepository struct {
	api    API
	logger zerolog.Logger
}

func NewUsersRepository(api API, logger zerolog.Logger) *UsersRepository {
	return &UsersRepository{api: api, logger: logger}
}

// List fetches all users, mapping each record with the never-fail policy.
func (r *UsersRepository) List(ctx context.Context) ([]domain.User, error) {
	doc, err := r.api.ListUsers(ctx)
	if err != nil {
		return nil, classify(err)
	}

	if doc.Data.Empty {
		return []domain.User{}, nil
	}

	users := make([]domain.User, 0, len(doc.Data.Items))
	for _, res := range doc.Data.Items {
		user, _ := userToDomain(res, MapOptions{}, r.logger)
		users = append(users, user)
	}
	return users, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	doc, err := r.api.GetUser(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	if doc.Data == nil {
		return nil, domain.NewNotFound("user with id %d not found", id)
	}

	user, _ := userToDomain(*doc.Data, MapOptions{}, r.logger)
	return &user, nil
}

// Register creates an account. Non-2xx statuses map to a fixed message table;
// a 2xx with no data is its own distinct failure. The bearer token comes from
// the Authorization response header and may legitimately be empty.
func (r *UsersRepository) Register(ctx context.Context, fullName, email, password string) (*domain.AuthSession, error) {
	req := RegisterRequest{
		FullName:     strings.TrimSpace(fullName),
		Email:        strings.TrimSpace(email),
		PasswordHash: password,
	}

	resp, err := r.api.RegisterUser(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	if !resp.OK() {
		r.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(resp.ErrorBody)).
			Msg("register rejected by server")
		return nil, domain.NewHTTPStatus(registerStatusMessage(resp.StatusCode))
	}

	return r.buildSession(resp)
}

// Login authenticates with its own status table; otherwise the flow is
// identical to Register.
func (r *UsersRepository) Login(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	req := LoginRequest{
		Email:        strings.TrimSpace(email),
		PasswordHash: password,
	}

	resp, err := r.api.LoginUser(ctx, req)
	if err != nil {
		return nil, classify(err)
	}

	if !resp.OK() {
		r.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(resp.ErrorBody)).
			Msg("login rejected by server")
		return nil, domain.NewHTTPStatus(loginStatusMessage(resp.StatusCode))
	}

	return r.buildSession(resp)
}

func (r *UsersRepository) Update(ctx context.Context, id int, fullName, email, password string) (*domain.User, error) {
	req := RegisterRequest{
		FullName:     fullName,
		Email:        email,
		PasswordHash: password,
	}

	doc, err := r.api.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, classify(err)
	}
	if doc.Data == nil {
		return nil, domain.NewMalformed("server returned no user data", nil)
	}

	user, _ := userToDomain(*doc.Data, MapOptions{}, r.logger)
	return &user, nil
}

// Delete collapses every failure into false, same as products.
func (r *UsersRepository) Delete(ctx context.Context, id int) bool {
	if err := r.api.DeleteUser(ctx, id); err != nil {
		r.logger.Warn().Err(err).Int("id", id).Msg("user delete failed")
		return false
	}
	return true
}

// buildSession maps the 2xx auth response body and extracts the bearer token.
func (r *UsersRepository) buildSession(resp *AuthResponse) (*domain.AuthSession, error) {
	if resp.Body == nil || resp.Body.Data == nil {
		return nil, domain.NewMalformed("server returned no user data", nil)
	}

	user, _ := userToDomain(*resp.Body.Data, MapOptions{}, r.logger)

	token := bearerToken(resp.Header)
	if token == "" {
		r.logger.Warn().Msg("no token found in response headers")
	}

	return &domain.AuthSession{User: user, Token: token}, nil
}

// bearerToken extracts the session token from the Authorization header. The
// lookup is case-insensitive and a leading "Bearer " prefix is stripped; a
// missing header yields an empty token rather than an error.
func bearerToken(h http.Header) string {
	value := h.Get("Authorization")
	if value == "" {
		return ""
	}
	const prefix = "Bearer "
	if len(value) >= len(prefix) && strings.EqualFold(value[:len(prefix)], prefix) {
		return value[len(prefix):]
	}
	return value
}

func registerStatusMessage(code int) string {
	switch code {
	case 400:
		return "invalid data"
	case 409:
		return "email already registered"
	case 500:
		return "server error, try later"
	default:
		return fmt.Sprintf("registration failed, status %d", code)
	}
}

func loginStatusMessage(code int) string {
	switch code {
	case 401:
		return "incorrect credentials"
	case 404:
		return "user not found"
	case 500:
		return "server error"
	default:
		return fmt.Sprintf("login failed, status %d", code)
	}
}
