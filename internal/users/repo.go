package users

import (
	"context"

	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID loads a user by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves the user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByAadharCard retrieves the user matching the provided national id.
func (r *Repository) FindByAadharCard(ctx context.Context, aadharCard string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("aadhar_card = ?", aadharCard).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateFields applies a partial update and returns the fresh row.
func (r *Repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.User, error) {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", id).
			Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// SetProvider writes the healthcare provider reference.
func (r *Repository) SetProvider(ctx context.Context, patientID, providerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", patientID).
		UpdateColumn("healthcare_provider_id", providerID).Error
}

// SetComplianceStatus overwrites the compliance classification.
func (r *Repository) SetComplianceStatus(ctx context.Context, patientID uuid.UUID, status enums.ComplianceStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", patientID).
		UpdateColumn("compliance_status", status).Error
}

// ListByProvider returns every patient assigned to the provider.
func (r *Repository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]models.User, error) {
	var patients []models.User
	if err := r.db.WithContext(ctx).
		Where("healthcare_provider_id = ? AND role = ?", providerID, enums.RolePatient).
		Order("name asc").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
