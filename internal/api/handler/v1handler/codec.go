package v1handler

import (
	"signup/internal/signup"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

var errNotObject = errors.New("body is not a JSON object")

// DecodeBody decodes a JSON object into a field map. Strings, booleans and
// null keep their JSON meaning and numbers become float64. Nested objects and
// arrays are kept as raw JSON, so they count as present non-string values.
func DecodeBody(data []byte) (map[string]any, error) {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, errNotObject
	}

	fields := make(map[string]any)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		v, err := decodeValue(d)
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		fields[key] = v

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode body")
	}

	if d.Next() != jx.Invalid {
		return nil, errors.New("unexpected data after JSON object")
	}

	return fields, nil
}

func decodeValue(d *jx.Decoder) (any, error) {
	switch d.Next() {
	case jx.String:
		return d.Str()
	case jx.Number:
		return d.Float64()
	case jx.Bool:
		return d.Bool()
	case jx.Null:
		return nil, d.Null()
	default:
		raw, err := d.Raw()
		if err != nil {
			return nil, err
		}

		return append(jx.Raw(nil), raw...), nil
	}
}

// EncodeResponse renders a controller response body as JSON.
func EncodeResponse(body any) []byte {
	var e jx.Encoder

	switch b := body.(type) {
	case string:
		e.Str(b)
	case *signup.MissingParamError:
		encodeParamError(&e, b.Name(), b.Error(), b.Param)
	case *signup.InvalidParamError:
		encodeParamError(&e, b.Name(), b.Error(), b.Param)
	case *signup.ServerError:
		encodeParamError(&e, b.Name(), b.Error(), "")
	default:
		srv := signup.NewServerError()
		encodeParamError(&e, srv.Name(), srv.Error(), "")
	}

	return e.Bytes()
}

func encodeParamError(e *jx.Encoder, name, message, param string) {
	e.ObjStart()
	e.FieldStart("error")
	e.Str(name)
	e.FieldStart("message")
	e.Str(message)
	if param != "" {
		e.FieldStart("param")
		e.Str(param)
	}
	e.ObjEnd()
}

func encodeKindError(code, message string) []byte {
	var e jx.Encoder
	encodeParamError(&e, code, message, "")

	return e.Bytes()
}
