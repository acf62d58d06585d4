package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"ontrack/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrMethodNotAllowed,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("disk full")

	require.Equal(t, "read icon: disk full", serrors.Wrap(serrors.ErrInternal, base, "read icon").Error())
	require.Equal(t, "icon missing", serrors.With(serrors.ErrNotFound, "icon missing").Error())
	require.Equal(t, "NOT_FOUND", serrors.KindOnly(serrors.ErrNotFound).Error())
	require.Equal(t, "<nil>", (*serrors.Error)(nil).Error())
}

func TestIsAndAs(t *testing.T) {
	cause := customError{msg: "boom"}
	err := fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrBadRequest, cause, "decode body"))

	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	var ce customError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "boom", ce.msg)

	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, serrors.ErrBadRequest, se.Kind())
	require.Equal(t, "decode body", se.Message())
	require.Equal(t, cause, se.Cause())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain error", errors.New("x"), http.StatusInternalServerError},
		{"kind sentinel", serrors.ErrNotFound, http.StatusNotFound},
		{"bad request", serrors.With(serrors.ErrBadRequest, "bad"), http.StatusBadRequest},
		{"method", serrors.KindOnly(serrors.ErrMethodNotAllowed), http.StatusMethodNotAllowed},
		{"wrapped unavailable", fmt.Errorf("x: %w", serrors.KindOnly(serrors.ErrUnavailable)), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "internal error", serrors.PublicMessage(errors.New("secret dsn")))
	require.Equal(t, "internal error", serrors.PublicMessage(serrors.Wrap(serrors.ErrInternal, errors.New("x"), "detail")))
	require.Equal(t, "resource not found", serrors.PublicMessage(serrors.ErrNotFound))
	require.Equal(t, "answers must be an array", serrors.PublicMessage(serrors.With(serrors.ErrBadRequest, "answers must be an array")))
}
