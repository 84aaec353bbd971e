// Package metrics declares the prometheus collectors shared by the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets are latency buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTPRequestDuration observes handled requests by method, route and status code.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Namespace: "signup",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Duration of HTTP requests.",
	Buckets:   DefaultBuckets,
}, []string{"method", "path", "status_code"})

// AccountsCreated counts accounts persisted by the account use case.
var AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Namespace: "signup",
	Name:      "accounts_created_total",
	Help:      "Number of accounts created.",
})
