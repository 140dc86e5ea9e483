// Package rest implements the data-access layer against the inventory API:
// the typed HTTP client, the JSON-API-flavoured wire envelopes, the DTO to
// domain mappers, and the repository implementations that classify transport
// failures into display-ready domain errors.
package rest

import (
	"bytes"
	"encoding/json"
)

// ListPayload is the decoded form of a collection endpoint's "data" field.
// The server encodes "no items" as a numeric zero (sometimes null) instead of
// an empty array, so the field is a sum of {items, empty}. Decoding resolves
// the ambiguity immediately; nothing downstream ever sees the loose value.
type ListPayload[T any] struct {
	Items []T
	Empty bool
}

// UnmarshalJSON treats anything that is not a JSON array as the empty
// sentinel.
func (p *ListPayload[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		p.Items = nil
		p.Empty = true
		return nil
	}
	p.Empty = false
	return json.Unmarshal(trimmed, &p.Items)
}

// ListDocument is the top-level envelope of a collection endpoint.
type ListDocument[T any] struct {
	Data ListPayload[T] `json:"data"`
}

// ProductDocument is the envelope of a single-product endpoint. Data is nil
// when the server sent null or omitted the field.
type ProductDocument struct {
	Data *ProductResource `json:"data"`
}

// UserDocument is the envelope of a single-user endpoint.
type UserDocument struct {
	Data *UserResource `json:"data"`
}

// ProductResource is the wrapped record around one product. The id lives on
// the wrapper, not inside the attributes.
type ProductResource struct {
	Type       string            `json:"type"`
	ID         int               `json:"id"`
	Attributes ProductAttributes `json:"attributes"`
}

type ProductAttributes struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UserResource is the wrapped record around one user.
type UserResource struct {
	Type       string         `json:"type"`
	ID         int            `json:"id"`
	Attributes UserAttributes `json:"attributes"`
}

type UserAttributes struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// ProductRequest is the create/update payload for products.
type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// RegisterRequest is the payload for registering or updating a user. The
// password travels pre-hashed; the client never sees a clear-text credential.
type RegisterRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}
