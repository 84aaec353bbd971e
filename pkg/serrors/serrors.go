// Package serrors defines semantic error kinds shared by the service layers.
// A kind says what category a failure belongs to (not found, conflict, ...)
// so that transports can choose a status code without inspecting causes.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a sentinel describing a category of failure.
type Kind interface {
	error
	isKind()
}

type kind struct {
	name   string
	status int
}

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind creates a kind with the given name that maps to the given HTTP status.
func NewKind(name string, status int) Kind { return kind{name: name, status: status} }

var (
	// ErrBadRequest indicates the client sent data that cannot be processed.
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest)
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND", http.StatusNotFound)
	// ErrMethodNotAllowed indicates the route exists but not for the used method.
	ErrMethodNotAllowed = NewKind("METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed)
	// ErrConflict indicates the entity already exists.
	ErrConflict = NewKind("CONFLICT", http.StatusConflict)
	// ErrInternal indicates an unexpected server side failure.
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError)
	// ErrUnavailable indicates a dependency is temporarily unreachable.
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable)
)

// Error carries a kind, an optional cause and an optional message.
//
// errors.Is and errors.As match both the kind and anything in the cause chain.
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind  Kind
	cause error
	msg   string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of kind k around cause with a formatted message.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, cause: cause, msg: fmt.Sprintf(format, args...)}
}

// KindOnly creates an error of kind k with neither message nor cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the kind of e or part of its cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.cause != nil && errors.Is(e.cause, target)
}

// As extracts either the kind or a type from the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.cause != nil && errors.As(e.cause, target)
}

// Kind returns the kind of e.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to e.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, possibly nil.
func (e *Error) Cause() error { return e.cause }

// KindOf returns the kind found in err's chain, or ErrInternal when err
// carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus returns the HTTP status code k maps to. Kinds not created by
// NewKind map to 500.
func HTTPStatus(k Kind) int {
	if kk, ok := k.(kind); ok && kk.status != 0 {
		return kk.status
	}

	return http.StatusInternalServerError
}

// PublicMessage returns the message that may be shown to clients for err.
// Internal failures never expose their message.
func PublicMessage(err error) string {
	k := KindOf(err)
	if k == ErrInternal {
		return "internal error"
	}

	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return k.Error()
}
