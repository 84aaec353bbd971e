package api_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"signup/internal/api"
	"signup/internal/api/handler/v1handler"
	"signup/internal/signup"
	mocksignup "signup/internal/signup/mock"
	"signup/pkg/domain"
	"signup/pkg/logger"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type sut struct {
	server         *httptest.Server
	emailValidator *mocksignup.MockEmailValidator
	addAccount     *mocksignup.MockAddAccount
}

func newSut(t *testing.T, pinger api.Pinger, opts api.Options) sut {
	t.Helper()

	ctrl := gomock.NewController(t)
	ev := mocksignup.NewMockEmailValidator(ctrl)
	aa := mocksignup.NewMockAddAccount(ctrl)
	reg := prometheus.NewRegistry()

	handler, err := api.NewHandler(api.Deps{
		Deps:       v1handler.Deps{Signup: signup.New(ev, aa)},
		Pinger:     pinger,
		Registerer: reg,
		Gatherer:   reg,
	}, opts)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return sut{server: srv, emailValidator: ev, addAccount: aa}
}

func (s sut) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(s.server.URL + path) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_Signup(t *testing.T) {
	s := newSut(t, nil, api.Options{RequestTimeout: time.Second})
	s.emailValidator.EXPECT().IsValid("a@b.com").Return(true, nil)
	s.addAccount.EXPECT().Add(gomock.Any(), gomock.Any()).
		Return(&domain.Account{ID: domain.AccountID(uuid.New())}, nil)

	res, err := http.Post(s.server.URL+v1handler.SignupPath, "application/json", //nolint: noctx
		strings.NewReader(`{"username":"u","email":"a@b.com","password":"p","passwordConfirmation":"p"}`))
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `"Ok"`, string(body))
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	_, metrics := s.get(t, "/metrics")
	require.Contains(t, metrics, "signup_responses")
}

func TestServer_Specs(t *testing.T) {
	s := newSut(t, nil, api.Options{})

	res, body := s.get(t, api.SpecsPath)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "/v1/signup:")

	res, _ = s.get(t, api.DocsPath)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_Health(t *testing.T) {
	s := newSut(t, pingFunc(func(context.Context) error { return nil }), api.Options{})
	res, _ := s.get(t, api.HealthPath)
	require.Equal(t, http.StatusOK, res.StatusCode)

	s = newSut(t, pingFunc(func(context.Context) error { return errors.New("connection refused") }), api.Options{})
	res, body := s.get(t, api.HealthPath)
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	require.JSONEq(t, `{"error":"UNAVAILABLE","message":"database unreachable"}`, body)
}

func TestServer_RequestTimeout(t *testing.T) {
	s := newSut(t, nil, api.Options{RequestTimeout: 50 * time.Millisecond})
	s.emailValidator.EXPECT().IsValid(gomock.Any()).Return(true, nil)
	s.addAccount.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.AddAccountInput) (*domain.Account, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		},
	)

	res, err := http.Post(s.server.URL+v1handler.SignupPath, "application/json", //nolint: noctx
		strings.NewReader(`{"username":"u","email":"a@b.com","password":"p","passwordConfirmation":"p"}`))
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestServer_Pprof(t *testing.T) {
	s := newSut(t, nil, api.Options{})
	res, _ := s.get(t, "/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
