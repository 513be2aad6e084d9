package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carewell-health/carewell-backend/internal/authz"
	pkgAuth "github.com/carewell-health/carewell-backend/pkg/auth"
	"github.com/carewell-health/carewell-backend/pkg/config"
	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	testJWT    = config.JWTConfig{Secret: "secret", Issuer: "carewell", ExpirationMinutes: 30}
	testCookie = config.CookieConfig{Name: "token"}
)

type stubLoader struct {
	user *models.User
}

func (s *stubLoader) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func mintToken(t *testing.T, userID uuid.UUID, role enums.Role) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testJWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	return token
}

func authedHandler(loader UserLoader, captured *string) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	return Auth(testJWT, testCookie, loader, nil)(inner)
}

func TestAuthAcceptsCookie(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: enums.RolePatient}
	loader := &stubLoader{user: user}

	var role string
	handler := authedHandler(loader, &role)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: mintToken(t, user.ID, user.Role)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if role != string(enums.RolePatient) {
		t.Fatalf("expected patient role in context, got %q", role)
	}
}

func TestAuthAcceptsBearerFallback(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: enums.RoleProvider}
	loader := &stubLoader{user: user}

	var role string
	handler := authedHandler(loader, &role)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, user.ID, user.Role))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if role != string(enums.RoleProvider) {
		t.Fatalf("expected provider role in context, got %q", role)
	}
}

func TestAuthRejectsMissingCredentials(t *testing.T) {
	var role string
	handler := authedHandler(&stubLoader{}, &role)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	var role string
	handler := authedHandler(&stubLoader{}, &role)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsDeletedUser(t *testing.T) {
	var role string
	handler := authedHandler(&stubLoader{}, &role)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: mintToken(t, uuid.New(), enums.RolePatient)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted account, got %d", rec.Code)
	}
}

func TestRequirePermissionBlocksWrongRole(t *testing.T) {
	user := &models.User{ID: uuid.New(), Role: enums.RolePatient}
	loader := &stubLoader{user: user}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(testJWT, testCookie, loader, nil)(
		RequirePermission(authz.PermManagePatients, nil)(inner),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: mintToken(t, user.ID, user.Role)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
