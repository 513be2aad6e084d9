package reminders

import (
	"context"
	"time"

	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes reminder persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reminders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a reminder. Completed always starts false; no endpoint
// flips it.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID, title string, dueDate time.Time) (*models.Reminder, error) {
	reminder := &models.Reminder{
		UserID:  userID,
		Title:   title,
		DueDate: dueDate,
	}
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

// ListByUser returns the user's reminders ordered by due date.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Reminder, error) {
	var entries []models.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
