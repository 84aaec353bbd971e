// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the signup service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"signup/internal/api/handler/v1handler"
	"signup/internal/config"
	"signup/pkg/controller"
	"signup/pkg/serrors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

//go:embed specs/v1.yaml
var v1Spec []byte

const (
	SpecsPath  = "/specs/v1.yaml"
	DocsPath   = "/v1/docs/"
	HealthPath = "/healthz"
)

// Options holds configuration for the HTTP server. Zero durations leave the
// corresponding net/http limit disabled.
type Options struct {
	V1HandlerOptions v1handler.Options

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout is applied to every request via http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	MetricsPath    string
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		V1HandlerOptions: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	// Pinger backs the readiness endpoint. Without it the endpoint always
	// reports ready.
	Pinger Pinger
	// Registerer receives the otel exporter collectors. Defaults to
	// prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
	// Gatherer is served at MetricsPath. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewServer wires up and returns a configured *http.Server.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// NewHandler builds the routed and middleware wrapped root handler.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	// otel
	if deps.MeterProvider == nil {
		exp, err := otelprom.New(otelprom.WithRegisterer(deps.Registerer))
		if err != nil {
			return nil, fmt.Errorf("could not create otel exporter: %w", err)
		}
		deps.MeterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	}

	// v1 specs file
	mux.HandleFunc(SpecsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle(DocsPath, v5emb.New("Signup Service", SpecsPath, DocsPath))

	// v1 api
	v1, err := v1handler.New(deps.Deps, opts.V1HandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}
	v1.Register(mux)

	mux.HandleFunc(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		if deps.Pinger != nil {
			if err := deps.Pinger.Ping(r.Context()); err != nil {
				v1.NewError(r.Context(), w, serrors.Wrap(serrors.ErrUnavailable, err, "database unreachable"))

				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	// pprof
	mux.Handle(controller.PprofPath, controller.PprofMux())

	var handler http.Handler = mux
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"TIMEOUT","message":"request timed out"}`)
	}
	handler = controller.WithMetrics(handler, v1handler.SignupPath, HealthPath)
	handler = controller.WithCORS(handler)
	handler = controller.WithLogger(handler)
	handler = controller.WithRecover(handler)

	return handler, nil
}
