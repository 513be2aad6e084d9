package wellness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carewell-health/carewell-backend/internal/logs"
	"github.com/carewell-health/carewell-backend/pkg/db/models"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Window sizes and raw-log caps for the two consumers of the aggregator.
const (
	SelfWindowDays = 7
	SelfLogLimit   = 5

	ProviderWindowDays = 30
	ProviderLogLimit   = 10
)

// Summary bundles a user's goal targets with the window statistics and the
// newest raw logs.
type Summary struct {
	Goals      Goals         `json:"goals"`
	Statistics Statistics    `json:"statistics"`
	RecentLogs []logs.LogDTO `json:"recentLogs"`
}

// Service aggregates a user's recent activity.
type Service interface {
	ComputeWellness(ctx context.Context, userID uuid.UUID, windowDays, limit int) (*Summary, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type logReader interface {
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.DailyLog, error)
}

type service struct {
	users userFinder
	logs  logReader
	now   func() time.Time
}

// NewService builds a wellness aggregator over the provided repositories.
func NewService(users userFinder, logRepo logReader) (Service, error) {
	if users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if logRepo == nil {
		return nil, fmt.Errorf("log repository is required")
	}
	return &service{
		users: users,
		logs:  logRepo,
		now:   time.Now,
	}, nil
}

func (s *service) ComputeWellness(ctx context.Context, userID uuid.UUID, windowDays, limit int) (*Summary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}

	since := s.now().UTC().AddDate(0, 0, -windowDays)
	entries, err := s.logs.ListSince(ctx, userID, since)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list logs")
	}

	recent := entries
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	return &Summary{
		Goals: Goals{
			StepsGoal:      user.StepsGoal,
			ActiveTimeGoal: user.ActiveTimeGoal,
			SleepGoal:      user.SleepGoal,
			WaterGoal:      user.WaterGoal,
		},
		Statistics: Summarize(entries),
		RecentLogs: logs.FromModels(recent),
	}, nil
}
