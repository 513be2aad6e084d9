package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/carewell-health/carewell-backend/internal/logs"
	"github.com/carewell-health/carewell-backend/internal/users"
	"github.com/carewell-health/carewell-backend/internal/wellness"
	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientSummary is the roster row a provider sees for each assigned patient.
type PatientSummary struct {
	ID               uuid.UUID              `json:"id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone"`
	Age              int                    `json:"age"`
	ComplianceStatus enums.ComplianceStatus `json:"complianceStatus"`
	Goals            wellness.Goals         `json:"goals"`
}

// PatientOverview is the detailed view of one patient: profile, goals, a
// 30-day statistics window and the newest raw logs.
type PatientOverview struct {
	Patient    *users.UserDTO      `json:"patient"`
	Goals      wellness.Goals      `json:"goals"`
	Statistics wellness.Statistics `json:"statistics"`
	RecentLogs []logs.LogDTO       `json:"recentLogs"`
}

// Service covers the provider-side patient workflow.
type Service interface {
	AssignPatient(ctx context.Context, providerID, patientID uuid.UUID) (*users.UserDTO, error)
	ListPatients(ctx context.Context, providerID uuid.UUID) ([]PatientSummary, error)
	GetPatientOverview(ctx context.Context, providerID, patientID uuid.UUID) (*PatientOverview, error)
	UpdateCompliance(ctx context.Context, providerID, patientID uuid.UUID, status string) (*users.UserDTO, error)
}

type userStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetProvider(ctx context.Context, patientID, providerID uuid.UUID) error
	SetComplianceStatus(ctx context.Context, patientID uuid.UUID, status enums.ComplianceStatus) error
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]models.User, error)
}

type service struct {
	users    userStore
	wellness wellness.Service
}

// NewService wires the provider workflow over the user store and the
// wellness aggregator.
func NewService(userRepo userStore, wellnessSvc wellness.Service) (Service, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if wellnessSvc == nil {
		return nil, fmt.Errorf("wellness service is required")
	}
	return &service{users: userRepo, wellness: wellnessSvc}, nil
}

// loadPatient fetches a user and verifies they are a patient owned by the
// given provider. Ownership failures map to Forbidden so a provider cannot
// probe other rosters.
func (s *service) loadPatient(ctx context.Context, providerID, patientID uuid.UUID) (*models.User, error) {
	patient, err := s.users.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "patient not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup patient")
	}
	if patient.Role != enums.RolePatient {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "patient not found")
	}
	if patient.HealthcareProviderID == nil || *patient.HealthcareProviderID != providerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "patient is not assigned to you")
	}
	return patient, nil
}

func (s *service) AssignPatient(ctx context.Context, providerID, patientID uuid.UUID) (*users.UserDTO, error) {
	patient, err := s.users.FindByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "patient not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup patient")
	}

	if patient.Role != enums.RolePatient {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user is not a patient")
	}
	if patient.HealthcareProviderID != nil {
		if *patient.HealthcareProviderID == providerID {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "patient is already assigned to you")
		}
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "patient is already assigned to another provider")
	}

	if err := s.users.SetProvider(ctx, patientID, providerID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "assign patient")
	}

	patient.HealthcareProviderID = &providerID
	return users.FromModel(patient), nil
}

func (s *service) ListPatients(ctx context.Context, providerID uuid.UUID) ([]PatientSummary, error) {
	patients, err := s.users.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list patients")
	}

	summaries := make([]PatientSummary, 0, len(patients))
	for i := range patients {
		p := &patients[i]
		summaries = append(summaries, PatientSummary{
			ID:               p.ID,
			Name:             p.Name,
			Email:            p.Email,
			Phone:            p.Phone,
			Age:              p.Age,
			ComplianceStatus: p.ComplianceStatus,
			Goals: wellness.Goals{
				StepsGoal:      p.StepsGoal,
				ActiveTimeGoal: p.ActiveTimeGoal,
				SleepGoal:      p.SleepGoal,
				WaterGoal:      p.WaterGoal,
			},
		})
	}
	return summaries, nil
}

func (s *service) GetPatientOverview(ctx context.Context, providerID, patientID uuid.UUID) (*PatientOverview, error) {
	patient, err := s.loadPatient(ctx, providerID, patientID)
	if err != nil {
		return nil, err
	}

	summary, err := s.wellness.ComputeWellness(ctx, patientID, wellness.ProviderWindowDays, wellness.ProviderLogLimit)
	if err != nil {
		return nil, err
	}

	return &PatientOverview{
		Patient:    users.FromModel(patient),
		Goals:      summary.Goals,
		Statistics: summary.Statistics,
		RecentLogs: summary.RecentLogs,
	}, nil
}

func (s *service) UpdateCompliance(ctx context.Context, providerID, patientID uuid.UUID, status string) (*users.UserDTO, error) {
	parsed, err := enums.ParseComplianceStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid compliance status").
			WithDetails(map[string]any{"allowed": enums.ComplianceStatuses()})
	}

	patient, err := s.loadPatient(ctx, providerID, patientID)
	if err != nil {
		return nil, err
	}

	if err := s.users.SetComplianceStatus(ctx, patientID, parsed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update compliance status")
	}

	patient.ComplianceStatus = parsed
	return users.FromModel(patient), nil
}
