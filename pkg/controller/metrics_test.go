package controller_test

import (
	"net/http"
	"net/http/httptest"
	"signup/pkg/controller"
	"signup/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := controller.WithMetrics(next, "/v1/signup")

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/signup", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path/123", nil))

	known, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(http.MethodPost, "/v1/signup", "418")
	require.NoError(t, err)
	require.Equal(t, 1, testutil.CollectAndCount(known.(prometheus.Collector)))

	other, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(http.MethodGet, "other", "418")
	require.NoError(t, err)
	require.Equal(t, 1, testutil.CollectAndCount(other.(prometheus.Collector)))
}
