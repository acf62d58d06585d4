// Package serrors implements semantic errors: a small set of kinds that tell
// the transport layer how to present a failure, independent of the concrete
// cause.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and work with errors.Is/As through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested resource (e.g. an icon) does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates the client sent an invalid payload.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrMethodNotAllowed indicates the route exists but not for this method.
	ErrMethodNotAllowed = NewKind("METHOD_NOT_ALLOWED")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates the service cannot serve yet, e.g. while the
	// reference data is not loaded.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional message.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches either the kind sentinel or the wrapped error.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Message() string { return e.msg }

func (e *Error) Cause() error { return e.err }

// KindOf returns the kind carried by err, or ErrInternal when err carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	return ErrInternal
}

// HTTPStatus maps the kind carried by err to an HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns a message safe to show to clients. Internal errors
// never leak their cause.
func PublicMessage(err error) string {
	k := KindOf(err)
	if k == ErrInternal {
		return "internal error"
	}

	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	switch k {
	case ErrNotFound:
		return "resource not found"
	case ErrBadRequest:
		return "bad request"
	case ErrMethodNotAllowed:
		return "method not allowed"
	case ErrUnavailable:
		return "service unavailable"
	default:
		return k.Error()
	}
}
