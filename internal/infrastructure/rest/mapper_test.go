package rest

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

func TestProductToDomainDirectCopy(t *testing.T) {
	res := ProductResource{
		Type:       "products",
		ID:         5,
		Attributes: ProductAttributes{Name: "Widget", Price: 9.99, Quantity: 10},
	}

	got := productToDomain(res)
	want := domain.Product{ID: 5, Name: "Widget", Price: 9.99, Quantity: 10}
	if got != want {
		t.Fatalf("product = %+v, want %+v", got, want)
	}
}

// Mapping is total: any combination of blank or invalid fields still yields a
// usable User. Callers cannot tell a defaulted record from a genuine one;
// that is the documented policy.
func TestUserToDomainSubstitutesSentinels(t *testing.T) {
	tests := []struct {
		name string
		res  UserResource
		want domain.User
	}{
		{
			"complete record",
			UserResource{ID: 7, Attributes: UserAttributes{FullName: "Ana", Email: "ana@example.com"}},
			domain.User{ID: 7, FullName: "Ana", Email: "ana@example.com"},
		},
		{
			"fields trimmed",
			UserResource{ID: 7, Attributes: UserAttributes{FullName: "  Ana  ", Email: " ana@example.com "}},
			domain.User{ID: 7, FullName: "Ana", Email: "ana@example.com"},
		},
		{
			"blank name",
			UserResource{ID: 7, Attributes: UserAttributes{FullName: "   ", Email: "ana@example.com"}},
			domain.User{ID: 7, FullName: "Usuario", Email: "ana@example.com"},
		},
		{
			"blank email",
			UserResource{ID: 7, Attributes: UserAttributes{FullName: "Ana", Email: ""}},
			domain.User{ID: 7, FullName: "Ana", Email: "no-email@example.com"},
		},
		{
			"invalid id",
			UserResource{ID: 0, Attributes: UserAttributes{FullName: "Ana", Email: "ana@example.com"}},
			domain.User{ID: 1, FullName: "Ana", Email: "ana@example.com"},
		},
		{
			"everything missing",
			UserResource{},
			domain.User{ID: 1, FullName: "Usuario", Email: "no-email@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := userToDomain(tt.res, MapOptions{}, zerolog.Nop())
			if err != nil {
				t.Fatalf("default mapping must never fail, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("user = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserToDomainStrictReportsSubstitutions(t *testing.T) {
	res := UserResource{ID: 0, Attributes: UserAttributes{FullName: "", Email: ""}}

	got, err := userToDomain(res, MapOptions{Strict: true}, zerolog.Nop())
	if !domain.IsKind(err, domain.KindMalformedResponse) {
		t.Fatalf("err = %v, want malformed-response error", err)
	}
	// Even strict mode returns the best-effort entity.
	if got.ID != 1 || got.FullName != "Usuario" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserToDomainStrictCleanRecord(t *testing.T) {
	res := UserResource{ID: 2, Attributes: UserAttributes{FullName: "Ana", Email: "ana@example.com"}}

	if _, err := userToDomain(res, MapOptions{Strict: true}, zerolog.Nop()); err != nil {
		t.Fatalf("clean record must pass strict mapping, got %v", err)
	}
}
