package controller

import (
	"context"
	"net"
	"net/http"
	"signup/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetClientIP returns the originating client address, preferring
// X-Forwarded-For, then X-Real-IP, then the connection's remote address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

type CtxKey string

const (
	// RequestIDKey stores the request ID in the request context.
	RequestIDKey CtxKey = "RequestID"
	// RequestIDHeader carries the request ID in requests and responses.
	RequestIDHeader = "X-Request-Id"
)

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// WithLogger assigns a request ID (reusing the client's X-Request-Id), binds
// a logger carrying it to the request context and writes an access log once
// the request is served.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String("request_id", requestID))

		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "access log",
			zap.Int("status_code", rec.status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
		)
	})
}
