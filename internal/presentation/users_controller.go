package presentation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
	"github.com/inventarioapp/inventory-client/internal/core/ports"
)

// UsersState is the user list screen's state.
type UsersState struct {
	Loading    bool
	Refreshing bool
	Users      []domain.User
	Error      string
}

// UsersController drives the user list screen.
type UsersController struct {
	svc    ports.UsersService
	store  *Store[UsersState]
	logger zerolog.Logger
}

func NewUsersController(svc ports.UsersService, logger zerolog.Logger) *UsersController {
	return &UsersController{
		svc:    svc,
		store:  NewStore(UsersState{}),
		logger: logger,
	}
}

func (c *UsersController) State() *Store[UsersState] {
	return c.store
}

func (c *UsersController) Load(ctx context.Context) {
	c.store.Update(func(s UsersState) UsersState {
		s.Loading = true
		s.Error = ""
		return s
	})

	users, err := c.svc.List(ctx)
	c.store.Update(func(s UsersState) UsersState {
		s.Loading = false
		s.Refreshing = false
		if err != nil {
			s.Error = err.Error()
			return s
		}
		s.Users = users
		s.Error = ""
		return s
	})
}

func (c *UsersController) Refresh(ctx context.Context) {
	c.store.Update(func(s UsersState) UsersState {
		s.Refreshing = true
		return s
	})
	c.Load(ctx)
}

func (c *UsersController) Delete(ctx context.Context, id int) {
	if err := c.svc.Delete(ctx, id); err != nil {
		c.logger.Warn().Err(err).Int("id", id).Msg("delete user failed")
		c.store.Update(func(s UsersState) UsersState {
			s.Error = err.Error()
			return s
		})
		return
	}
	c.Load(ctx)
}
