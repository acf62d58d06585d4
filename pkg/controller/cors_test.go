package controller_test

import (
	"net/http"
	"net/http/httptest"
	"ontrack/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/survey/submit", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(nil)(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Headers"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "POST")
}

func TestWithCORS_AllowedOrigins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	mw := controller.WithCORS([]string{"http://localhost:3000", "https://ontrack.example"})

	tests := []struct {
		name        string
		origin      string
		allowOrigin string
		credentials string
	}{
		{name: "listed origin", origin: "https://ontrack.example", allowOrigin: "https://ontrack.example", credentials: "true"},
		{name: "unlisted origin", origin: "https://evil.example"},
		{name: "no origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/survey/questions", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			res := rec.Result()
			require.Equal(t, http.StatusTeapot, res.StatusCode)
			require.Equal(t, tt.allowOrigin, res.Header.Get("Access-Control-Allow-Origin"))
			require.Equal(t, tt.credentials, res.Header.Get("Access-Control-Allow-Credentials"))
		})
	}
}
