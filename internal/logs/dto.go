package logs

import (
	"time"

	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/google/uuid"
)

// LogDTO is the transport shape for a daily log.
type LogDTO struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Date          time.Time `json:"date"`
	Steps         int       `json:"steps"`
	WaterLitres   float64   `json:"waterLitres"`
	SleepHours    float64   `json:"sleepHours"`
	ActiveMinutes int       `json:"activeMinutes"`
	GoalsMet      bool      `json:"goalsMet"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateLogRequest is the submission payload. One log covers one calendar
// day, so the date is required and carries no time component.
type CreateLogRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Steps         int     `json:"steps" validate:"gte=0"`
	WaterLitres   float64 `json:"waterLitres" validate:"gte=0"`
	SleepHours    float64 `json:"sleepHours" validate:"gte=0,lte=24"`
	ActiveMinutes int     `json:"activeMinutes" validate:"gte=0,lte=1440"`
	GoalsMet      bool    `json:"goalsMet"`
}

// ParseDate returns the requested date at UTC midnight.
func (c CreateLogRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", c.Date)
}

// CreateLogDTO holds the data required by the repo to persist a new log.
type CreateLogDTO struct {
	UserID        uuid.UUID
	Date          time.Time
	Steps         int
	WaterLitres   float64
	SleepHours    float64
	ActiveMinutes int
	GoalsMet      bool
}

func FromModel(l *models.DailyLog) LogDTO {
	return LogDTO{
		ID:            l.ID,
		UserID:        l.UserID,
		Date:          l.Date,
		Steps:         l.Steps,
		WaterLitres:   l.WaterLitres,
		SleepHours:    l.SleepHours,
		ActiveMinutes: l.ActiveMinutes,
		GoalsMet:      l.GoalsMet,
		CreatedAt:     l.CreatedAt,
	}
}

func FromModels(entries []models.DailyLog) []LogDTO {
	dtos := make([]LogDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, FromModel(&entries[i]))
	}
	return dtos
}

func (c CreateLogDTO) ToModel() *models.DailyLog {
	return &models.DailyLog{
		UserID:        c.UserID,
		Date:          c.Date,
		Steps:         c.Steps,
		WaterLitres:   c.WaterLitres,
		SleepHours:    c.SleepHours,
		ActiveMinutes: c.ActiveMinutes,
		GoalsMet:      c.GoalsMet,
	}
}
