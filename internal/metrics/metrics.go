// Package metrics defines the Prometheus collectors of a go-ligand
// application. Collectors are registered with the default registry when the
// package is loaded and exposed by [Handler].
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ligand"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ── HTTP metrics ─────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled requests.
// Labels:
//   - method: request method
//   - route: chi route pattern (e.g. "/widgets/{id}"), never the raw path
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── OpenAPI client metrics ───────────────────────────────────────────────────

// ClientGenerationsTotal counts requests forwarded to the OpenAPI generator.
// Labels:
//   - language: "typescript-axios" or "python"
//   - result: "success" or "failure"
var ClientGenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "openapi_client_generations_total",
		Help:      "Total number of OpenAPI client generation requests, by language and result.",
	},
	[]string{"language", "result"},
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
