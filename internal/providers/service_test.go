package providers

import (
	"context"
	"testing"

	"github.com/carewell-health/carewell-backend/internal/wellness"
	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubUserStore struct {
	users      map[uuid.UUID]*models.User
	roster     []models.User
	assigned   map[uuid.UUID]uuid.UUID
	compliance map[uuid.UUID]enums.ComplianceStatus
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		users:      map[uuid.UUID]*models.User{},
		assigned:   map[uuid.UUID]uuid.UUID{},
		compliance: map[uuid.UUID]enums.ComplianceStatus{},
	}
}

func (s *stubUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserStore) SetProvider(_ context.Context, patientID, providerID uuid.UUID) error {
	s.assigned[patientID] = providerID
	return nil
}

func (s *stubUserStore) SetComplianceStatus(_ context.Context, patientID uuid.UUID, status enums.ComplianceStatus) error {
	s.compliance[patientID] = status
	return nil
}

func (s *stubUserStore) ListByProvider(_ context.Context, _ uuid.UUID) ([]models.User, error) {
	return s.roster, nil
}

type stubWellness struct {
	summary *wellness.Summary
	err     error
}

func (s *stubWellness) ComputeWellness(_ context.Context, _ uuid.UUID, _, _ int) (*wellness.Summary, error) {
	return s.summary, s.err
}

func buildService(t *testing.T, store *stubUserStore) Service {
	t.Helper()
	svc, err := NewService(store, &stubWellness{summary: &wellness.Summary{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func newPatient(store *stubUserStore, providerID *uuid.UUID) *models.User {
	patient := &models.User{
		ID:                   uuid.New(),
		Name:                 "Asha Rao",
		Role:                 enums.RolePatient,
		ComplianceStatus:     enums.CompliancePending,
		HealthcareProviderID: providerID,
	}
	store.users[patient.ID] = patient
	return patient
}

func TestAssignPatientClaimsUnassigned(t *testing.T) {
	store := newStubUserStore()
	providerID := uuid.New()
	patient := newPatient(store, nil)

	svc := buildService(t, store)

	dto, err := svc.AssignPatient(context.Background(), providerID, patient.ID)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if dto.HealthcareProviderID == nil || *dto.HealthcareProviderID != providerID {
		t.Fatalf("expected provider %s on returned patient", providerID)
	}
	if store.assigned[patient.ID] != providerID {
		t.Fatalf("expected provider persisted")
	}
}

func TestAssignPatientMissing(t *testing.T) {
	svc := buildService(t, newStubUserStore())

	_, err := svc.AssignPatient(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAssignPatientRejectsProviders(t *testing.T) {
	store := newStubUserStore()
	other := &models.User{ID: uuid.New(), Role: enums.RoleProvider}
	store.users[other.ID] = other

	svc := buildService(t, store)

	_, err := svc.AssignPatient(context.Background(), uuid.New(), other.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAssignPatientAlreadyAssignedElsewhere(t *testing.T) {
	store := newStubUserStore()
	otherProvider := uuid.New()
	patient := newPatient(store, &otherProvider)

	svc := buildService(t, store)

	_, err := svc.AssignPatient(context.Background(), uuid.New(), patient.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAssignPatientAlreadyAssignedToCaller(t *testing.T) {
	store := newStubUserStore()
	providerID := uuid.New()
	patient := newPatient(store, &providerID)

	svc := buildService(t, store)

	_, err := svc.AssignPatient(context.Background(), providerID, patient.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetPatientOverviewRequiresOwnership(t *testing.T) {
	store := newStubUserStore()
	otherProvider := uuid.New()
	patient := newPatient(store, &otherProvider)

	svc := buildService(t, store)

	_, err := svc.GetPatientOverview(context.Background(), uuid.New(), patient.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestGetPatientOverviewUnassignedPatient(t *testing.T) {
	store := newStubUserStore()
	patient := newPatient(store, nil)

	svc := buildService(t, store)

	_, err := svc.GetPatientOverview(context.Background(), uuid.New(), patient.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateComplianceInvalidStatus(t *testing.T) {
	store := newStubUserStore()
	providerID := uuid.New()
	patient := newPatient(store, &providerID)

	svc := buildService(t, store)

	_, err := svc.UpdateCompliance(context.Background(), providerID, patient.ID, "Almost There")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateComplianceOverwrites(t *testing.T) {
	store := newStubUserStore()
	providerID := uuid.New()
	patient := newPatient(store, &providerID)
	patient.ComplianceStatus = enums.ComplianceGoalMet

	svc := buildService(t, store)

	dto, err := svc.UpdateCompliance(context.Background(), providerID, patient.ID, string(enums.ComplianceMissedCheckup))
	if err != nil {
		t.Fatalf("update compliance: %v", err)
	}
	if dto.ComplianceStatus != enums.ComplianceMissedCheckup {
		t.Fatalf("expected status overwritten, got %s", dto.ComplianceStatus)
	}
	if store.compliance[patient.ID] != enums.ComplianceMissedCheckup {
		t.Fatalf("expected status persisted")
	}
}

func TestListPatientsProjectsSummaries(t *testing.T) {
	store := newStubUserStore()
	providerID := uuid.New()
	store.roster = []models.User{
		{
			ID:               uuid.New(),
			Name:             "Asha Rao",
			Email:            "asha@example.com",
			Age:              34,
			ComplianceStatus: enums.CompliancePending,
			StepsGoal:        8000,
			WaterGoal:        2.5,
		},
	}

	svc := buildService(t, store)

	summaries, err := svc.ListPatients(context.Background(), providerID)
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Goals.StepsGoal != 8000 {
		t.Fatalf("expected goals projected, got %+v", summaries[0].Goals)
	}
}
