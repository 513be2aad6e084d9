package auth

import (
	"net/http"
	"time"

	"github.com/carewell-health/carewell-backend/pkg/config"
)

// SetTokenCookie writes the httpOnly session cookie alongside the JSON body
// so browser and header-based clients can both authenticate.
func SetTokenCookie(w http.ResponseWriter, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieCfg.Name,
		Value:    token,
		Path:     "/",
		Domain:   cookieCfg.Domain,
		MaxAge:   int(jwtCfg.Expiration().Seconds()),
		HttpOnly: true,
		Secure:   cookieCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie expires the session cookie. Logout has no server-side
// effect beyond this.
func ClearTokenCookie(w http.ResponseWriter, cookieCfg config.CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieCfg.Name,
		Value:    "",
		Path:     "/",
		Domain:   cookieCfg.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cookieCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
