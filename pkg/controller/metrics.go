package controller

import (
	"net/http"
	"signup/pkg/metrics"
	"strconv"
	"time"
)

// WithMetrics observes request latency in metrics.HTTPRequestDuration. The
// path label is the request path only when it is one of knownPaths, and
// "other" otherwise, to keep label cardinality bounded.
func WithMetrics(next http.Handler, knownPaths ...string) http.Handler {
	known := make(map[string]struct{}, len(knownPaths))
	for _, p := range knownPaths {
		known[p] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		path := "other"
		if _, ok := known[r.URL.Path]; ok {
			path = r.URL.Path
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
