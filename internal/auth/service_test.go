package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/carewell-health/carewell-backend/internal/users"
	pkgAuth "github.com/carewell-health/carewell-backend/pkg/auth"
	"github.com/carewell-health/carewell-backend/pkg/config"
	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/security"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var testJWT = config.JWTConfig{
	Secret:            "secret",
	Issuer:            "carewell",
	ExpirationMinutes: 30,
}

type stubUserStore struct {
	byID      map[uuid.UUID]*models.User
	byEmail   map[string]*models.User
	createErr error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		byID:    map[uuid.UUID]*models.User{},
		byEmail: map[string]*models.User{},
	}
}

func (s *stubUserStore) Create(_ context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	user := dto.ToModel()
	user.ID = uuid.New()
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
	return user, nil
}

func (s *stubUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func mustService(t *testing.T, store *stubUserStore) Service {
	t.Helper()
	svc, err := NewService(store, testJWT, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRegisterDefaultsToPatient(t *testing.T) {
	store := newStubUserStore()
	svc := mustService(t, store)

	session, err := svc.Register(context.Background(), RegisterDTO{
		Name:       "Asha Rao",
		Age:        34,
		Email:      "asha@example.com",
		Phone:      "9876543210",
		AadharCard: "123412341234",
		Password:   "correct-horse",
		Consent:    true,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if session.User.Role != enums.RolePatient {
		t.Fatalf("expected patient role, got %s", session.User.Role)
	}
	if session.User.ComplianceStatus != enums.CompliancePending {
		t.Fatalf("expected pending compliance, got %s", session.User.ComplianceStatus)
	}
	if session.Token == "" {
		t.Fatalf("expected session token")
	}

	claims, err := pkgAuth.ParseAccessToken(testJWT, session.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != session.User.ID {
		t.Fatalf("token subject mismatch")
	}
	if claims.Role != enums.RolePatient {
		t.Fatalf("expected patient role claim, got %s", claims.Role)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := mustService(t, newStubUserStore())

	_, err := svc.Register(context.Background(), RegisterDTO{
		Name:       "Asha Rao",
		Age:        34,
		Email:      "asha@example.com",
		Phone:      "9876543210",
		AadharCard: "123412341234",
		Password:   "correct-horse",
		Role:       "admin",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	store := newStubUserStore()
	svc := mustService(t, store)

	session, err := svc.Register(context.Background(), RegisterDTO{
		Name:       "Asha Rao",
		Age:        34,
		Email:      "asha@example.com",
		Phone:      "9876543210",
		AadharCard: "123412341234",
		Password:   "correct-horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	stored := store.byID[session.User.ID]
	if stored.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in the clear")
	}
	if !strings.HasPrefix(stored.PasswordHash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", stored.PasswordHash)
	}
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	store := newStubUserStore()
	svc := mustService(t, store)

	hash, err := security.HashPassword("correct-horse", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		Role:         enums.RolePatient,
		PasswordHash: hash,
	}
	store.byID[user.ID] = user
	store.byEmail[user.Email] = user

	session, err := svc.Login(context.Background(), LoginDTO{
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.User.ID != user.ID {
		t.Fatalf("unexpected user returned")
	}
}

func TestLoginUniformFailures(t *testing.T) {
	store := newStubUserStore()
	svc := mustService(t, store)

	hash, err := security.HashPassword("correct-horse", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Email:        "asha@example.com",
		Role:         enums.RolePatient,
		PasswordHash: hash,
	}
	store.byEmail[user.Email] = user

	cases := []struct {
		name string
		dto  LoginDTO
	}{
		{"unknown email", LoginDTO{Email: "nobody@example.com", Password: "whatever"}},
		{"wrong password", LoginDTO{Email: "asha@example.com", Password: "wrong"}},
	}

	var messages []string
	for _, tc := range cases {
		_, err := svc.Login(context.Background(), tc.dto)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("%s: expected unauthorized, got %v", tc.name, err)
		}
		messages = append(messages, typed.Message())
	}

	if messages[0] != messages[1] {
		t.Fatalf("failure messages must match: %q vs %q", messages[0], messages[1])
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	store := newStubUserStore()
	store.createErr = &pq.Error{Code: "23505", Constraint: "ux_users_email"}
	svc := mustService(t, store)

	_, err := svc.Register(context.Background(), RegisterDTO{
		Name:       "Asha Rao",
		Age:        34,
		Email:      "asha@example.com",
		Phone:      "9876543210",
		AadharCard: "123412341234",
		Password:   "correct-horse",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterDuplicateAadharConflict(t *testing.T) {
	store := newStubUserStore()
	store.createErr = &pq.Error{Code: "23505", Constraint: "ux_users_aadhar_card"}
	svc := mustService(t, store)

	_, err := svc.Register(context.Background(), RegisterDTO{
		Name:       "Asha Rao",
		Age:        34,
		Email:      "asha@example.com",
		Phone:      "9876543210",
		AadharCard: "123412341234",
		Password:   "correct-horse",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCurrentUserNotFound(t *testing.T) {
	svc := mustService(t, newStubUserStore())

	_, err := svc.CurrentUser(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}
