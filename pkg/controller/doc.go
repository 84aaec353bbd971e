// Package controller contains the HTTP middlewares shared by the API server.
//
// Middlewares:
//   - WithRecover: turns handler panics into a 500 JSON response.
//   - WithCORS: permissive CORS headers and OPTIONS preflight handling.
//   - WithLogger: request ID, request-scoped logger and access log.
//   - WithMetrics: request latency histogram.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers to mount under a debug path.
package controller
