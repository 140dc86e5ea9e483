package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventarioapp/inventory-client/internal/metrics"
)

// instrumentedTransport is the interceptor chain of the client: it logs every
// request and response and feeds the prometheus counters. It never alters the
// request or swallows a failure.
type instrumentedTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func newInstrumentedTransport(base http.RoundTripper, logger zerolog.Logger) *instrumentedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &instrumentedTransport{base: base, logger: logger}
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	endpoint := endpointLabel(req)
	start := time.Now()

	t.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("request")

	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		metrics.ObserveClientRequest(endpoint, "error", elapsed)
		t.logger.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return nil, err
	}

	outcome := "ok"
	if resp.StatusCode >= 400 {
		outcome = "http_error"
	}
	metrics.ObserveClientRequest(endpoint, outcome, elapsed)

	t.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("response")

	return resp, nil
}

// endpointLabel collapses resource ids so the metric cardinality stays fixed:
// "DELETE /v1/products/42" becomes "DELETE /v1/products/:id".
func endpointLabel(req *http.Request) string {
	segments := strings.Split(strings.Trim(req.URL.Path, "/"), "/")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if isNumeric(seg) {
			segments[i] = ":id"
		}
	}
	return req.Method + " /" + strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
