package presentation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
	"github.com/inventarioapp/inventory-client/internal/core/ports"
)

// LoginState is the login screen's state. Session is set once login succeeds;
// keeping it anywhere more durable is outside this layer.
type LoginState struct {
	Email    string
	Password string
	Loading  bool
	Error    string
	LoggedIn bool
	Session  *domain.AuthSession
}

// LoginController drives the login screen.
type LoginController struct {
	svc    ports.UsersService
	store  *Store[LoginState]
	logger zerolog.Logger
}

func NewLoginController(svc ports.UsersService, logger zerolog.Logger) *LoginController {
	return &LoginController{svc: svc, store: NewStore(LoginState{}), logger: logger}
}

func (c *LoginController) State() *Store[LoginState] {
	return c.store
}

func (c *LoginController) SetEmail(email string) {
	c.store.Update(func(s LoginState) LoginState {
		s.Email = email
		s.Error = ""
		return s
	})
}

func (c *LoginController) SetPassword(password string) {
	c.store.Update(func(s LoginState) LoginState {
		s.Password = password
		s.Error = ""
		return s
	})
}

// Submit runs the login use case with the current form fields.
func (c *LoginController) Submit(ctx context.Context) {
	form := c.store.Get()
	c.store.Update(func(s LoginState) LoginState {
		s.Loading = true
		s.Error = ""
		return s
	})

	session, err := c.svc.Login(ctx, ports.LoginInput{Email: form.Email, Password: form.Password})
	c.store.Update(func(s LoginState) LoginState {
		s.Loading = false
		if err != nil {
			s.Error = err.Error()
			return s
		}
		s.LoggedIn = true
		s.Session = session
		return s
	})
}

// RegisterState is the registration screen's state.
type RegisterState struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Loading         bool
	Error           string
	Success         bool
	Session         *domain.AuthSession
}

// RegisterController drives the registration screen.
type RegisterController struct {
	svc    ports.UsersService
	store  *Store[RegisterState]
	logger zerolog.Logger
}

func NewRegisterController(svc ports.UsersService, logger zerolog.Logger) *RegisterController {
	return &RegisterController{svc: svc, store: NewStore(RegisterState{}), logger: logger}
}

func (c *RegisterController) State() *Store[RegisterState] {
	return c.store
}

func (c *RegisterController) SetFields(fullName, email, password, confirm string) {
	c.store.Update(func(s RegisterState) RegisterState {
		s.FullName = fullName
		s.Email = email
		s.Password = password
		s.ConfirmPassword = confirm
		s.Error = ""
		return s
	})
}

// Submit checks the confirmation field locally, then runs the register use
// case. Everything else is validated by the service.
func (c *RegisterController) Submit(ctx context.Context) {
	form := c.store.Get()

	if form.Password != form.ConfirmPassword {
		c.store.Update(func(s RegisterState) RegisterState {
			s.Error = "passwords do not match"
			return s
		})
		return
	}

	c.store.Update(func(s RegisterState) RegisterState {
		s.Loading = true
		s.Error = ""
		return s
	})

	session, err := c.svc.Register(ctx, ports.RegisterInput{
		FullName: form.FullName,
		Email:    form.Email,
		Password: form.Password,
	})
	c.store.Update(func(s RegisterState) RegisterState {
		s.Loading = false
		if err != nil {
			s.Error = err.Error()
			return s
		}
		s.Success = true
		s.Session = session
		return s
	})
}
