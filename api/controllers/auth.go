package controllers

import (
	"net/http"

	"github.com/carewell-health/carewell-backend/api/middleware"
	"github.com/carewell-health/carewell-backend/api/responses"
	"github.com/carewell-health/carewell-backend/api/validators"
	"github.com/carewell-health/carewell-backend/internal/auth"
	pkgAuth "github.com/carewell-health/carewell-backend/pkg/auth"
	"github.com/carewell-health/carewell-backend/pkg/config"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/logger"
	"github.com/google/uuid"
)

// AuthRegister creates an account and starts a session in one step.
func AuthRegister(svc auth.Service, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.RegisterDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pkgAuth.SetTokenCookie(w, cookieCfg, jwtCfg, session.Token)
		responses.WriteSuccessStatus(w, http.StatusCreated, session)
	}
}

// AuthLogin exchanges credentials for a session cookie and token.
func AuthLogin(svc auth.Service, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		pkgAuth.SetTokenCookie(w, cookieCfg, jwtCfg, session.Token)
		responses.WriteSuccess(w, session)
	}
}

// AuthMe returns the authenticated user's sanitized profile.
func AuthMe(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// AuthLogout clears the session cookie. Tokens stay valid until expiry;
// there is no server-side session store to invalidate.
func AuthLogout(cookieCfg config.CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pkgAuth.ClearTokenCookie(w, cookieCfg)
		responses.WriteMessage(w, http.StatusOK, "logged out", nil)
	}
}
