// Package metrics defines the custom Prometheus metrics of the inventory
// client. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry on import.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ClientRequestsTotal counts API requests issued by the client.
// Labels:
//   - endpoint: method plus id-normalised path (e.g. "GET /v1/products/:id")
//   - outcome: "ok", "http_error" (status >= 400), or "error" (transport failure)
var ClientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_requests_total",
		Help:      "Total number of API requests issued, by endpoint and outcome.",
	},
	[]string{"endpoint", "outcome"},
)

// ClientRequestDuration measures end-to-end request latency per endpoint.
var ClientRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "client_request_duration_seconds",
		Help:      "Duration of API requests from send to first response byte read.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ObserveClientRequest records one completed request attempt.
func ObserveClientRequest(endpoint, outcome string, elapsed time.Duration) {
	ClientRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	ClientRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
