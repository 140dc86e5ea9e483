package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

func userRes(id int, fullName, email string) UserResource {
	return UserResource{
		Type: "users",
		ID:   id,
		Attributes: UserAttributes{
			FullName: fullName,
			Email:    email,
		},
	}
}

func okAuthResponse(res UserResource, token string) *AuthResponse {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", token)
	}
	return &AuthResponse{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       &UserDocument{Data: &res},
	}
}

func TestUsersRepositoryListMapsDefensively(t *testing.T) {
	api := &stubAPI{
		listUsers: func(ctx context.Context) (*ListDocument[UserResource], error) {
			return &ListDocument[UserResource]{
				Data: ListPayload[UserResource]{Items: []UserResource{
					userRes(1, "Ana", "ana@example.com"),
					userRes(0, "", ""),
				}},
			}, nil
		},
	}
	repo := NewUsersRepository(api, zerolog.Nop())

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len = %d, want 2", len(users))
	}
	if users[0].FullName != "Ana" {
		t.Fatalf("unexpected first user: %+v", users[0])
	}
	// The broken record still comes through, carrying the placeholders.
	if users[1].ID != defaultUserID || users[1].FullName != defaultUserName || users[1].Email != defaultUserEmail {
		t.Fatalf("unexpected second user: %+v", users[1])
	}
}

func TestUsersRepositoryListEmptySentinel(t *testing.T) {
	api := &stubAPI{
		listUsers: func(ctx context.Context) (*ListDocument[UserResource], error) {
			return &ListDocument[UserResource]{Data: ListPayload[UserResource]{Empty: true}}, nil
		},
	}
	repo := NewUsersRepository(api, zerolog.Nop())

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("want empty slice, got %#v", users)
	}
}

func TestUsersRepositoryGetByIDNotFound(t *testing.T) {
	api := &stubAPI{
		getUser: func(ctx context.Context, id int) (*UserDocument, error) {
			return &UserDocument{}, nil
		},
	}
	repo := NewUsersRepository(api, zerolog.Nop())

	_, err := repo.GetByID(context.Background(), 42)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	dErr, _ := domain.AsError(err)
	if dErr.Message != "user with id 42 not found" {
		t.Fatalf("message = %q", dErr.Message)
	}
}

func TestUsersRepositoryRegister(t *testing.T) {
	t.Run("success extracts user and token", func(t *testing.T) {
		var got RegisterRequest
		api := &stubAPI{
			registerUser: func(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
				got = req
				return okAuthResponse(userRes(1, "Ana", "ana@example.com"), "Bearer abc123"), nil
			},
		}
		repo := NewUsersRepository(api, zerolog.Nop())

		session, err := repo.Register(context.Background(), "  Ana  ", " ana@example.com ", "hash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.FullName != "Ana" || got.Email != "ana@example.com" {
			t.Fatalf("fields not trimmed: %+v", got)
		}
		if session.User.FullName != "Ana" || session.Token != "abc123" {
			t.Fatalf("unexpected session: %+v", session)
		}
	})

	t.Run("status table", func(t *testing.T) {
		tests := []struct {
			status int
			want   string
		}{
			{400, "invalid data"},
			{409, "email already registered"},
			{500, "server error, try later"},
			{418, "registration failed, status 418"},
		}

		for _, tt := range tests {
			api := &stubAPI{
				registerUser: func(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
					return &AuthResponse{StatusCode: tt.status, Header: http.Header{}}, nil
				},
			}
			repo := NewUsersRepository(api, zerolog.Nop())

			_, err := repo.Register(context.Background(), "Ana", "ana@example.com", "hash")
			if !domain.IsKind(err, domain.KindHTTPStatus) {
				t.Fatalf("status %d: err = %v, want http status kind", tt.status, err)
			}
			if err.Error() != tt.want {
				t.Errorf("status %d: message = %q, want %q", tt.status, err.Error(), tt.want)
			}
		}
	})

	t.Run("2xx with no data is malformed", func(t *testing.T) {
		api := &stubAPI{
			registerUser: func(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
				return &AuthResponse{
					StatusCode: http.StatusCreated,
					Header:     http.Header{},
					Body:       &UserDocument{},
				}, nil
			},
		}
		repo := NewUsersRepository(api, zerolog.Nop())

		_, err := repo.Register(context.Background(), "Ana", "ana@example.com", "hash")
		if !domain.IsKind(err, domain.KindMalformedResponse) {
			t.Fatalf("err = %v, want malformed response", err)
		}
		if err.Error() != "server returned no user data" {
			t.Fatalf("message = %q", err.Error())
		}
	})
}

func TestUsersRepositoryLogin(t *testing.T) {
	t.Run("status table", func(t *testing.T) {
		tests := []struct {
			status int
			want   string
		}{
			{401, "incorrect credentials"},
			{404, "user not found"},
			{500, "server error"},
			{403, "login failed, status 403"},
		}

		for _, tt := range tests {
			api := &stubAPI{
				loginUser: func(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
					return &AuthResponse{StatusCode: tt.status, Header: http.Header{}}, nil
				},
			}
			repo := NewUsersRepository(api, zerolog.Nop())

			_, err := repo.Login(context.Background(), "ana@example.com", "hash")
			if !domain.IsKind(err, domain.KindHTTPStatus) {
				t.Fatalf("status %d: err = %v, want http status kind", tt.status, err)
			}
			if err.Error() != tt.want {
				t.Errorf("status %d: message = %q, want %q", tt.status, err.Error(), tt.want)
			}
		}
	})

	t.Run("missing token yields empty session token", func(t *testing.T) {
		api := &stubAPI{
			loginUser: func(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
				return okAuthResponse(userRes(1, "Ana", "ana@example.com"), ""), nil
			},
		}
		repo := NewUsersRepository(api, zerolog.Nop())

		session, err := repo.Login(context.Background(), "ana@example.com", "hash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Token != "" {
			t.Fatalf("token = %q, want empty", session.Token)
		}
	})

	t.Run("transport failures are classified", func(t *testing.T) {
		api := &stubAPI{
			loginUser: func(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
				return nil, context.DeadlineExceeded
			},
		}
		repo := NewUsersRepository(api, zerolog.Nop())

		_, err := repo.Login(context.Background(), "ana@example.com", "hash")
		if !domain.IsKind(err, domain.KindTransport) {
			t.Fatalf("err = %v, want transport kind", err)
		}
	})
}

func TestUsersRepositoryUpdateNoData(t *testing.T) {
	api := &stubAPI{
		updateUser: func(ctx context.Context, id int, req RegisterRequest) (*UserDocument, error) {
			return &UserDocument{}, nil
		},
	}
	repo := NewUsersRepository(api, zerolog.Nop())

	_, err := repo.Update(context.Background(), 1, "Ana", "ana@example.com", "hash")
	if !domain.IsKind(err, domain.KindMalformedResponse) {
		t.Fatalf("err = %v, want malformed response", err)
	}
}

func TestUsersRepositoryDeleteSwallowsFailures(t *testing.T) {
	api := &stubAPI{
		deleteUser: func(ctx context.Context, id int) error {
			return &statusError{Code: 500}
		},
	}
	repo := NewUsersRepository(api, zerolog.Nop())

	if repo.Delete(context.Background(), 1) {
		t.Fatal("want false")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"with prefix", "Bearer abc123", "abc123"},
		{"lowercase prefix", "bearer abc123", "abc123"},
		{"no prefix", "abc123", "abc123"},
		{"absent", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.value != "" {
				h.Set("Authorization", tt.value)
			}
			if got := bearerToken(h); got != tt.want {
				t.Errorf("bearerToken = %q, want %q", got, tt.want)
			}
		})
	}
}
