package v1handler

import (
	"io"
	"net/http"
	"signup/internal/signup"
	"signup/pkg/serrors"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Signup serves POST /v1/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.NewError(ctx, w, serrors.With(serrors.ErrMethodNotAllowed, "method %s not allowed", r.Method))

		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "request body too large"))

			return
		}
		h.NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	fields, err := DecodeBody(data)
	if err != nil {
		h.NewError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body"))

		return
	}

	ctx, span := h.tracer.Start(ctx, "signup", trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	res := h.deps.Signup.Handle(ctx, signup.Request{Body: fields})

	status := attribute.Int("status_code", res.StatusCode)
	h.responses.Add(ctx, 1, metric.WithAttributes(status))
	span.SetAttributes(status)
	if res.StatusCode >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, "signup failed")
	}

	writeJSON(ctx, w, res.StatusCode, EncodeResponse(res.Body))
}
