package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Request-Id"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// WithCORS returns a middleware that sets CORS headers and short-circuits
// OPTIONS preflight requests with 204 No Content.
//
// With no allowed origins every origin is accepted through a wildcard and
// credentials are not allowed. Otherwise only listed origins are echoed back,
// with credentials allowed; other origins get no Allow-Origin header.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if len(allowedOrigins) == 0 {
				h.Set("Access-Control-Allow-Origin", "*")
			} else if origin := r.Header.Get("Origin"); origin != "" && slices.Contains(allowedOrigins, origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
