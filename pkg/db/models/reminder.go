package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a scheduled preventive-care reminder for a user.
type Reminder struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Title     string    `gorm:"column:title;not null"`
	DueDate   time.Time `gorm:"column:due_date;not null"`
	Completed bool      `gorm:"column:completed;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
