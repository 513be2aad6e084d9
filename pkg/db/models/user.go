package models

import (
	"time"

	"github.com/carewell-health/carewell-backend/pkg/enums"
	"github.com/google/uuid"
)

// User is the canonical identity entity for both patients and providers.
// Patient wellness goals live here so the aggregator can return targets
// alongside computed statistics.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Age          int        `gorm:"column:age;not null"`
	Email        string     `gorm:"type:text;not null;uniqueIndex:ux_users_email"`
	Phone        string     `gorm:"column:phone;not null"`
	Address      *string    `gorm:"column:address"`
	AadharCard   string     `gorm:"column:aadhar_card;not null;uniqueIndex:ux_users_aadhar_card"`
	PhotoURL     *string    `gorm:"column:photo_url"`
	Role         enums.Role `gorm:"column:role;not null;default:patient"`

	StepsGoal      int     `gorm:"column:steps_goal;not null;default:8000"`
	ActiveTimeGoal int     `gorm:"column:active_time_goal;not null;default:30"`
	SleepGoal      float64 `gorm:"column:sleep_goal;not null;default:7"`
	WaterGoal      float64 `gorm:"column:water_goal;not null;default:2.5"`

	AnnualBloodTestDate *time.Time `gorm:"column:annual_blood_test_date"`
	Allergies           *string    `gorm:"column:allergies"`
	CurrentMedications  *string    `gorm:"column:current_medications"`

	// At most one provider per patient; assignment is monotonic.
	HealthcareProviderID *uuid.UUID             `gorm:"column:healthcare_provider_id;type:uuid"`
	ComplianceStatus     enums.ComplianceStatus `gorm:"column:compliance_status;not null;default:Pending"`

	PasswordHash string `gorm:"column:password_hash;not null"`
	Consent      bool   `gorm:"column:consent;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
