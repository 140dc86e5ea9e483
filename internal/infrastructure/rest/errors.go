package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/inventarioapp/inventory-client/internal/core/domain"
)

// Display-ready connectivity and parse messages. These are the only texts the
// presentation layer ever shows for low-level failures; the raw cause stays
// in the error chain for logs.
const (
	msgTimeout        = "request timed out, check your internet connection"
	msgNoConnectivity = "no internet connection, check your network"
	msgConnection     = "connection error, try again"
	msgMalformed      = "could not process the server response"
)

// classify converts a raw client error into the domain taxonomy. Errors that
// already carry a domain kind pass through untouched, so a message produced
// deeper in the flow is never wrapped twice.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if de, ok := domain.AsError(err); ok {
		return de
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewTransport(msgTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewTransport(msgTimeout, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.NewTransport(msgNoConnectivity, err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return domain.NewTransport(msgConnection, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.NewTransport(msgConnection, err)
	}

	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		return domain.NewMalformed(msgMalformed, err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return domain.NewMalformed(msgMalformed, err)
	}

	var stErr *statusError
	if errors.As(err, &stErr) {
		return domain.NewHTTPStatus(fmt.Sprintf("request failed, status %d", stErr.Code))
	}

	return domain.NewUnexpected(err)
}
