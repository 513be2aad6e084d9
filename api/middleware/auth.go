package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/carewell-health/carewell-backend/api/responses"
	pkgAuth "github.com/carewell-health/carewell-backend/pkg/auth"
	"github.com/carewell-health/carewell-backend/pkg/config"
	"github.com/carewell-health/carewell-backend/pkg/db/models"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserLoader re-reads the authenticated user on every request so deleted
// accounts and role changes take effect before token expiry.
type UserLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Auth validates the session token and seeds the request context with the
// user's identity. The cookie wins; an Authorization bearer header is the
// fallback for non-browser clients.
func Auth(jwtCfg config.JWTConfig, cookieCfg config.CookieConfig, loader UserLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cookieCfg.Name)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(jwtCfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			user, err := loader.FindByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "account unavailable"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, user.ID.String())
			ctx = context.WithValue(ctx, ctxRole, string(user.Role))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    user.ID.String(),
					"actor_role": string(user.Role),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil {
		if value := strings.TrimSpace(cookie.Value); value != "" {
			return value
		}
	}

	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}
