package middleware

import (
	"net/http"

	"github.com/carewell-health/carewell-backend/api/responses"
	"github.com/carewell-health/carewell-backend/internal/authz"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/logger"
)

// RequirePermission rejects requests whose actor role does not hold the
// permission. Runs after Auth, so the role in context is trusted.
func RequirePermission(perm authz.Permission, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := enums.Role(RoleFromContext(r.Context()))
			if !authz.Can(role, perm) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
