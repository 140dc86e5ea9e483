package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		kind    ErrorKind
		message string
	}{
		{"validation", NewValidation("email is required"), KindValidation, "email is required"},
		{"validation formatted", NewValidation("invalid %s id", "product"), KindValidation, "invalid product id"},
		{"not found", NewNotFound("product with id %d not found", 7), KindNotFound, "product with id 7 not found"},
		{"http status", NewHTTPStatus("incorrect credentials"), KindHTTPStatus, "incorrect credentials"},
		{"transport", NewTransport("connection error, try again", errors.New("refused")), KindTransport, "connection error, try again"},
		{"malformed", NewMalformed("could not process the server response", nil), KindMalformedResponse, "could not process the server response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("message = %q, want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestNewUnexpectedPreservesMessage(t *testing.T) {
	cause := errors.New("boom")
	err := NewUnexpected(cause)

	if err.Kind != KindUnexpected {
		t.Fatalf("kind = %v, want KindUnexpected", err.Kind)
	}
	if err.Error() != "unexpected error: boom" {
		t.Fatalf("message = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to survive in the chain")
	}
}

func TestIsKind(t *testing.T) {
	err := NewValidation("name cannot be empty")

	if !IsKind(err, KindValidation) {
		t.Fatal("expected KindValidation")
	}
	if IsKind(err, KindTransport) {
		t.Fatal("did not expect KindTransport")
	}
	if IsKind(errors.New("plain"), KindValidation) {
		t.Fatal("plain errors have no kind")
	}
	if IsKind(nil, KindValidation) {
		t.Fatal("nil has no kind")
	}
}

func TestAsErrorThroughWrapping(t *testing.T) {
	inner := NewNotFound("user with id %d not found", 3)
	wrapped := fmt.Errorf("loading screen: %w", inner)

	de, ok := AsError(wrapped)
	if !ok {
		t.Fatal("expected to find domain error in chain")
	}
	if de.Kind != KindNotFound {
		t.Fatalf("kind = %v, want KindNotFound", de.Kind)
	}
}

func TestKindString(t *testing.T) {
	tests := map[ErrorKind]string{
		KindValidation:        "validation",
		KindNotFound:          "not_found",
		KindHTTPStatus:        "http_status",
		KindTransport:         "transport",
		KindMalformedResponse: "malformed_response",
		KindUnexpected:        "unexpected",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
