package reminders

import (
	"time"

	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/google/uuid"
)

// ReminderDTO is the transport shape for a preventive-care reminder.
type ReminderDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"dueDate"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateReminderRequest is the submission payload for a new reminder.
type CreateReminderRequest struct {
	Title   string `json:"title" validate:"required,min=2,max=200"`
	DueDate string `json:"dueDate" validate:"required,datetime=2006-01-02"`
}

func FromModel(m *models.Reminder) ReminderDTO {
	return ReminderDTO{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		DueDate:   m.DueDate,
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(entries []models.Reminder) []ReminderDTO {
	dtos := make([]ReminderDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, FromModel(&entries[i]))
	}
	return dtos
}
