package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
	"github.com/inventarioapp/inventory-client/internal/core/ports"
)

// UsersService implements the user-management and auth use cases.
type UsersService struct {
	repo     ports.UsersRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUsersService(repo ports.UsersRepository, logger zerolog.Logger) *UsersService {
	return &UsersService{repo: repo, validate: newValidator(), logger: logger}
}

// List fetches all users and drops entries with a blank email. Same
// empty-after-filter policy as products: zero valid users is an error.
func (s *UsersService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	valid := users[:0:0]
	for _, u := range users {
		if strings.TrimSpace(u.Email) != "" {
			valid = append(valid, u)
		}
	}

	if len(valid) == 0 {
		return nil, domain.NewNotFound("no users found")
	}
	return valid, nil
}

func (s *UsersService) Get(ctx context.Context, id int) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.NewValidation("invalid user id")
	}
	return s.repo.GetByID(ctx, id)
}

// Register validates the form fields and delegates. The password is already
// hashed by the caller; only its length is checked locally.
func (s *UsersService) Register(ctx context.Context, input ports.RegisterInput) (*domain.AuthSession, error) {
	if err := checkInput(s.validate, input); err != nil {
		return nil, err
	}

	session, err := s.repo.Register(ctx, input.FullName, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", session.User.ID).Str("email", session.User.Email).Msg("user registered")
	return session, nil
}

func (s *UsersService) Login(ctx context.Context, input ports.LoginInput) (*domain.AuthSession, error) {
	if err := checkInput(s.validate, input); err != nil {
		return nil, err
	}

	session, err := s.repo.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", session.User.ID).Msg("user logged in")
	return session, nil
}

func (s *UsersService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if err := checkInput(s.validate, input); err != nil {
		return nil, err
	}

	user, err := s.repo.Update(ctx, input.ID, input.FullName, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", user.ID).Msg("user updated")
	return user, nil
}

// Delete removes a user. As with products, the repository collapses every
// failure cause into a boolean, so the message here cannot be more specific.
func (s *UsersService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.NewValidation("invalid user id")
	}

	if !s.repo.Delete(ctx, id) {
		return &domain.Error{Kind: domain.KindUnexpected, Message: "could not delete the user"}
	}

	s.logger.Info().Int("id", id).Msg("user deleted")
	return nil
}
