package controller_test

import (
	"net/http"
	"net/http/httptest"
	"signup/pkg/controller"
	"signup/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remote: "not-an-addr", want: "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res.Header.Get(controller.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	generated := rec.Result().Header.Get("X-Echo-Request-Id")
	require.NotEmpty(t, generated)
	require.Equal(t, generated, rec.Result().Header.Get(controller.RequestIDHeader))
}

func TestWithLogger_AccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	// the access log goes through the request-scoped logger, derived from the
	// one already bound to the incoming context.
	withBase := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithLogger(r.Context(), zap.New(core))
		controller.WithLogger(next).ServeHTTP(w, r.WithContext(ctx))
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/signup", nil)
	req.Header.Set(controller.RequestIDHeader, "req-1")
	withBase.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(http.StatusBadRequest), fields["status_code"])
	require.Equal(t, http.MethodPost, fields["method"])
	require.Equal(t, "req-1", fields["request_id"])
}
