package logs

import (
	"context"
	"time"

	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes daily-log persistence operations. Logs are append-only;
// there are no update or delete paths.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a logs repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a daily log. A duplicate (user, date) pair surfaces as a
// unique-constraint violation from the store; callers map it to a conflict.
func (r *Repository) Create(ctx context.Context, dto CreateLogDTO) (*models.DailyLog, error) {
	log := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// ListByUser returns every log for the user, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DailyLog, error) {
	var entries []models.DailyLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListSince returns the user's logs with date >= since, newest first.
func (r *Repository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.DailyLog, error) {
	var entries []models.DailyLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
