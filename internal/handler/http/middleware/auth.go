package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-performance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/upstream"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid access token. Must run after
// jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := jwt.PrincipalFromContext(r.Context()); err != nil {
			response.HandleError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UpstreamSession forwards the caller's bearer token to the backend client
func UpstreamSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := jwtauth.TokenFromHeader(r)
		if token == "" {
			response.HandleError(w, auth.ErrMissingToken)
			return
		}

		ctx := upstream.WithSession(r.Context(), upstream.Session{Token: token})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
