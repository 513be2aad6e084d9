package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is one calendar day of wellness metrics for a user. The
// (user_id, date) unique index is the only duplicate-date guard; there is no
// pre-insert existence check. goals_met is caller-supplied. Rows are
// immutable after creation.
type DailyLog struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:ux_daily_logs_user_date"`
	Date   time.Time `gorm:"column:date;not null;uniqueIndex:ux_daily_logs_user_date"`

	Steps         int     `gorm:"column:steps;not null;default:0"`
	WaterLitres   float64 `gorm:"column:water_litres;not null;default:0"`
	SleepHours    float64 `gorm:"column:sleep_hours;not null;default:0"`
	ActiveMinutes int     `gorm:"column:active_minutes;not null;default:0"`
	GoalsMet      bool    `gorm:"column:goals_met;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
