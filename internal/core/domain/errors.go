package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the presentation layer. Every error that
// crosses a repository or service boundary carries exactly one kind.
type ErrorKind int

const (
	// KindValidation marks local input errors raised before any network call.
	KindValidation ErrorKind = iota
	// KindNotFound marks a by-id lookup for which the server returned no data.
	KindNotFound
	// KindHTTPStatus marks a non-2xx response already translated to a
	// human-readable message.
	KindHTTPStatus
	// KindTransport marks connectivity failures: timeout, DNS, refused.
	KindTransport
	// KindMalformedResponse marks JSON parse or shape failures.
	KindMalformedResponse
	// KindUnexpected is the catch-all for everything else.
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindHTTPStatus:
		return "http_status"
	case KindTransport:
		return "transport"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unexpected"
	}
}

// Error is the single error type exposed above the repository layer. Message
// is display-ready; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// NewValidation returns a validation-kind error with a formatted message.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound returns a not-found-kind error with a formatted message.
func NewNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewHTTPStatus returns an http-status-kind error carrying msg verbatim.
func NewHTTPStatus(msg string) *Error {
	return &Error{Kind: KindHTTPStatus, Message: msg}
}

// NewTransport wraps a connectivity failure with a display-ready message.
func NewTransport(msg string, cause error) *Error {
	return &Error{Kind: KindTransport, Message: msg, Err: cause}
}

// NewMalformed wraps a parse or shape failure with a display-ready message.
func NewMalformed(msg string, cause error) *Error {
	return &Error{Kind: KindMalformedResponse, Message: msg, Err: cause}
}

// NewUnexpected wraps any other failure, preserving its message.
func NewUnexpected(cause error) *Error {
	msg := "unknown"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Kind: KindUnexpected, Message: "unexpected error: " + msg, Err: cause}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	de, ok := AsError(err)
	return ok && de.Kind == kind
}

// AsError extracts the *Error from err's chain, if any.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
