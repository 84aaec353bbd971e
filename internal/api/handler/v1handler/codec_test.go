package v1handler_test

import (
	"signup/internal/api/handler/v1handler"
	"signup/internal/signup"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	fields, err := v1handler.DecodeBody([]byte(`{
		"username": "u",
		"email": null,
		"admin": true,
		"age": 0,
		"tags": ["a", "b"],
		"profile": {"x": 1}
	}`))
	require.NoError(t, err)

	require.Equal(t, "u", fields["username"])
	require.Contains(t, fields, "email")
	require.Nil(t, fields["email"])
	require.Equal(t, true, fields["admin"])
	require.InDelta(t, 0.0, fields["age"], 0)
	require.IsType(t, jx.Raw{}, fields["tags"])
	require.JSONEq(t, `{"x": 1}`, string(fields["profile"].(jx.Raw)))
}

func TestDecodeBody_Empty(t *testing.T) {
	fields, err := v1handler.DecodeBody([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestDecodeBody_NotObject(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `1`, `{"a":}`} {
		_, err := v1handler.DecodeBody([]byte(body))
		require.Error(t, err, body)
	}
}

func TestEncodeResponse(t *testing.T) {
	require.JSONEq(t, `"Ok"`, string(v1handler.EncodeResponse(signup.OkBody)))
	require.JSONEq(t,
		`{"error":"MissingParamError","message":"Missing param: email","param":"email"}`,
		string(v1handler.EncodeResponse(signup.NewMissingParamError("email"))))
	require.JSONEq(t,
		`{"error":"ServerError","message":"Internal server error"}`,
		string(v1handler.EncodeResponse(signup.NewServerError())))
	require.JSONEq(t,
		`{"error":"ServerError","message":"Internal server error"}`,
		string(v1handler.EncodeResponse(42)))
}
