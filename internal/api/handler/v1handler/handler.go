// Package v1handler serves the v1 HTTP API. It translates between JSON on the
// wire and the transport independent signup controller.
package v1handler

import (
	"context"
	"net/http"
	"signup/internal/config"
	"signup/internal/signup"
	"signup/pkg/logger"
	"signup/pkg/serrors"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const (
	// SignupPath is the route of the signup operation.
	SignupPath = "/v1/signup"

	instrumentationName = "signup/internal/api/handler/v1handler"

	// DefaultMaxBodyBytes bounds request bodies when Options leave it unset.
	DefaultMaxBodyBytes = 64 << 10
)

// Signup handles a decoded signup request. *signup.Controller implements it.
type Signup interface {
	Handle(ctx context.Context, req signup.Request) signup.Response
}

type Deps struct {
	Signup Signup

	// MeterProvider and TracerProvider default to no-op providers.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

type Options struct {
	MaxBodyBytes int64
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
	}
}

type Handler struct {
	deps Deps
	opts Options

	tracer    trace.Tracer
	responses metric.Int64Counter
}

func New(deps Deps, opts Options) (*Handler, error) {
	if deps.MeterProvider == nil {
		deps.MeterProvider = metricnoop.NewMeterProvider()
	}
	if deps.TracerProvider == nil {
		deps.TracerProvider = tracenoop.NewTracerProvider()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	responses, err := deps.MeterProvider.Meter(instrumentationName).Int64Counter(
		"signup.responses",
		metric.WithDescription("Signup responses by status code."),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create signup.responses counter")
	}

	return &Handler{
		deps:      deps,
		opts:      opts,
		tracer:    deps.TracerProvider.Tracer(instrumentationName),
		responses: responses,
	}, nil
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc(SignupPath, h.Signup)
}

// NewError writes err as a JSON error whose status follows its serrors kind.
// Internal failures are logged and reported without details.
func (h *Handler) NewError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	writeJSON(ctx, w, status, encodeKindError(kind.Error(), serrors.PublicMessage(err)))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
