package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/workforce-performance-go/internal/domain/user"
	"github.com/cmlabs-hris/workforce-performance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-performance-go/internal/pkg/jwt"
)

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := jwt.PrincipalFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(principal.Role, permission) {
				response.HandleError(w, fmt.Errorf("%w: required '%s', but user role is '%s'", user.ErrInsufficientPermissions, permission, principal.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
