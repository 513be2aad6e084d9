package users

import (
	"fmt"
	"time"

	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	"github.com/google/uuid"
)

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	ID                   uuid.UUID              `json:"id"`
	Name                 string                 `json:"name"`
	Age                  int                    `json:"age"`
	Email                string                 `json:"email"`
	Phone                string                 `json:"phone"`
	Address              *string                `json:"address,omitempty"`
	AadharCard           string                 `json:"aadharCard"`
	PhotoURL             *string                `json:"photoUrl,omitempty"`
	Role                 enums.Role             `json:"role"`
	StepsGoal            int                    `json:"stepsGoal"`
	ActiveTimeGoal       int                    `json:"activeTimeGoal"`
	SleepGoal            float64                `json:"sleepGoal"`
	WaterGoal            float64                `json:"waterGoal"`
	AnnualBloodTestDate  *time.Time             `json:"annualBloodTestDate,omitempty"`
	Allergies            *string                `json:"allergies,omitempty"`
	CurrentMedications   *string                `json:"currentMedications,omitempty"`
	HealthcareProviderID *uuid.UUID             `json:"healthcareProvider,omitempty"`
	ComplianceStatus     enums.ComplianceStatus `json:"complianceStatus"`
	Consent              bool                   `json:"consent"`
	CreatedAt            time.Time              `json:"createdAt"`
	UpdatedAt            time.Time              `json:"updatedAt"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name         string
	Age          int
	Email        string
	Phone        string
	Address      *string
	AadharCard   string
	PhotoURL     *string
	Role         enums.Role
	PasswordHash string
	Consent      bool
}

// UpdateProfileDTO is the partial-update payload for a patient's own
// profile. Email, aadhar card, role, compliance status and password are not
// editable here. Nil fields are left untouched.
type UpdateProfileDTO struct {
	Name                *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Age                 *int     `json:"age" validate:"omitempty,gte=1,lte=130"`
	Phone               *string  `json:"phone" validate:"omitempty,min=7,max=20"`
	Address             *string  `json:"address" validate:"omitempty,max=500"`
	PhotoURL            *string  `json:"photoUrl" validate:"omitempty,url"`
	StepsGoal           *int     `json:"stepsGoal" validate:"omitempty,gte=0"`
	ActiveTimeGoal      *int     `json:"activeTimeGoal" validate:"omitempty,gte=0"`
	SleepGoal           *float64 `json:"sleepGoal" validate:"omitempty,gte=0,lte=24"`
	WaterGoal           *float64 `json:"waterGoal" validate:"omitempty,gte=0"`
	AnnualBloodTestDate *string  `json:"annualBloodTestDate" validate:"omitempty,datetime=2006-01-02"`
	Allergies           *string  `json:"allergies" validate:"omitempty,max=1000"`
	CurrentMedications  *string  `json:"currentMedications" validate:"omitempty,max=1000"`
}

// Fields flattens the set values into a column map for a partial update.
func (u UpdateProfileDTO) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Age != nil {
		fields["age"] = *u.Age
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
	}
	if u.Address != nil {
		fields["address"] = *u.Address
	}
	if u.PhotoURL != nil {
		fields["photo_url"] = *u.PhotoURL
	}
	if u.StepsGoal != nil {
		fields["steps_goal"] = *u.StepsGoal
	}
	if u.ActiveTimeGoal != nil {
		fields["active_time_goal"] = *u.ActiveTimeGoal
	}
	if u.SleepGoal != nil {
		fields["sleep_goal"] = *u.SleepGoal
	}
	if u.WaterGoal != nil {
		fields["water_goal"] = *u.WaterGoal
	}
	if u.AnnualBloodTestDate != nil {
		parsed, err := time.Parse("2006-01-02", *u.AnnualBloodTestDate)
		if err != nil {
			return nil, fmt.Errorf("parsing annualBloodTestDate: %w", err)
		}
		fields["annual_blood_test_date"] = parsed
	}
	if u.Allergies != nil {
		fields["allergies"] = *u.Allergies
	}
	if u.CurrentMedications != nil {
		fields["current_medications"] = *u.CurrentMedications
	}
	return fields, nil
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:                   u.ID,
		Name:                 u.Name,
		Age:                  u.Age,
		Email:                u.Email,
		Phone:                u.Phone,
		Address:              u.Address,
		AadharCard:           u.AadharCard,
		PhotoURL:             u.PhotoURL,
		Role:                 u.Role,
		StepsGoal:            u.StepsGoal,
		ActiveTimeGoal:       u.ActiveTimeGoal,
		SleepGoal:            u.SleepGoal,
		WaterGoal:            u.WaterGoal,
		AnnualBloodTestDate:  u.AnnualBloodTestDate,
		Allergies:            u.Allergies,
		CurrentMedications:   u.CurrentMedications,
		HealthcareProviderID: u.HealthcareProviderID,
		ComplianceStatus:     u.ComplianceStatus,
		Consent:              u.Consent,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	role := c.Role
	if role == "" {
		role = enums.RolePatient
	}

	return &models.User{
		Name:             c.Name,
		Age:              c.Age,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		AadharCard:       c.AadharCard,
		PhotoURL:         c.PhotoURL,
		Role:             role,
		PasswordHash:     c.PasswordHash,
		Consent:          c.Consent,
		ComplianceStatus: enums.CompliancePending,
	}
}
