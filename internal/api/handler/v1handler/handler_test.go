package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"signup/internal/api/handler/v1handler"
	"signup/internal/signup"
	mocksignup "signup/internal/signup/mock"
	"signup/pkg/domain"
	"signup/pkg/logger"
	"signup/pkg/serrors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type sut struct {
	handler        *v1handler.Handler
	emailValidator *mocksignup.MockEmailValidator
	addAccount     *mocksignup.MockAddAccount
}

func newSut(t *testing.T, deps v1handler.Deps, opts v1handler.Options) sut {
	t.Helper()

	ctrl := gomock.NewController(t)
	ev := mocksignup.NewMockEmailValidator(ctrl)
	aa := mocksignup.NewMockAddAccount(ctrl)

	deps.Signup = signup.New(ev, aa)
	h, err := v1handler.New(deps, opts)
	require.NoError(t, err)

	return sut{handler: h, emailValidator: ev, addAccount: aa}
}

func (s sut) do(method, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	s.handler.Register(mux)

	req := httptest.NewRequest(method, v1handler.SignupPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

const validBody = `{"username":"any_name","email":"any@example.com","password":"p","passwordConfirmation":"p"}`

func TestSignup_Success(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})
	s.emailValidator.EXPECT().IsValid("any@example.com").Return(true, nil)
	s.addAccount.EXPECT().Add(gomock.Any(), domain.AddAccountInput{
		Username: "any_name",
		Email:    "any@example.com",
		Password: "p",
	}).Return(&domain.Account{ID: domain.AccountID(uuid.New())}, nil)

	rec := s.do(http.MethodPost, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `"Ok"`, rec.Body.String())
}

func TestSignup_MissingParam(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})

	rec := s.do(http.MethodPost, `{"email":"a@b.com","password":"p","passwordConfirmation":"p"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t,
		`{"error":"MissingParamError","message":"Missing param: username","param":"username"}`,
		rec.Body.String())
}

func TestSignup_NullAndEmptyAreMissing(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})

	rec := s.do(http.MethodPost, `{"username":"u","email":null,"password":"p","passwordConfirmation":"p"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"param":"email"`)

	rec = s.do(http.MethodPost, `{"username":"u","email":"a@b.com","password":"","passwordConfirmation":"p"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"param":"password"`)
}

func TestSignup_NestedValueIsInvalidParam(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})

	rec := s.do(http.MethodPost, `{"username":{"first":"a"},"email":"a@b.com","password":"p","passwordConfirmation":"p"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t,
		`{"error":"InvalidParamError","message":"Invalid param: username","param":"username"}`,
		rec.Body.String())
}

func TestSignup_PasswordMismatch(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})

	rec := s.do(http.MethodPost, `{"username":"u","email":"a@b.com","password":"p1","passwordConfirmation":"p2"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t,
		`{"error":"InvalidParamError","message":"Invalid param: passwordConfirmationError","param":"passwordConfirmationError"}`,
		rec.Body.String())
}

func TestSignup_ServerError(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})
	s.emailValidator.EXPECT().IsValid(gomock.Any()).Return(true, nil)
	s.addAccount.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	rec := s.do(http.MethodPost, validBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"ServerError","message":"Internal server error"}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "db down")
}

func TestSignup_InvalidJSON(t *testing.T) {
	for name, body := range map[string]string{
		"empty":    ``,
		"array":    `[1,2]`,
		"string":   `"hello"`,
		"broken":   `{"username":`,
		"trailing": `{"username":"u"} {}`,
	} {
		t.Run(name, func(t *testing.T) {
			s := newSut(t, v1handler.Deps{}, v1handler.Options{})

			rec := s.do(http.MethodPost, body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"error":"BAD_REQUEST","message":"invalid JSON body"}`, rec.Body.String())
		})
	}
}

func TestSignup_BodyTooLarge(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{MaxBodyBytes: 16})

	rec := s.do(http.MethodPost, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"BAD_REQUEST","message":"request body too large"}`, rec.Body.String())
}

func TestSignup_MethodNotAllowed(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})

	rec := s.do(http.MethodGet, "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	require.JSONEq(t, `{"error":"METHOD_NOT_ALLOWED","message":"method GET not allowed"}`, rec.Body.String())
}

func TestNewError(t *testing.T) {
	s := newSut(t, v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "plain error is internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":"INTERNAL","message":"internal error"}`,
		},
		{
			name:   "kind sentinel",
			err:    serrors.ErrNotFound,
			status: http.StatusNotFound,
			body:   `{"error":"NOT_FOUND","message":"NOT_FOUND"}`,
		},
		{
			name:   "kind with message",
			err:    serrors.With(serrors.ErrConflict, "username taken"),
			status: http.StatusConflict,
			body:   `{"error":"CONFLICT","message":"username taken"}`,
		},
		{
			name:   "wrapped cause is not exposed",
			err:    serrors.Wrap(serrors.ErrBadRequest, errors.New("secret"), "bad input"),
			status: http.StatusBadRequest,
			body:   `{"error":"BAD_REQUEST","message":"bad input"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.handler.NewError(ctx, rec, tt.err)

			require.Equal(t, tt.status, rec.Code)
			require.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
