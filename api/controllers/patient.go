package controllers

import (
	"net/http"
	"time"

	"github.com/carewell-health/carewell-backend/api/middleware"
	"github.com/carewell-health/carewell-backend/api/responses"
	"github.com/carewell-health/carewell-backend/api/validators"
	"github.com/carewell-health/carewell-backend/internal/logs"
	"github.com/carewell-health/carewell-backend/internal/reminders"
	"github.com/carewell-health/carewell-backend/internal/users"
	"github.com/carewell-health/carewell-backend/internal/wellness"
	"github.com/carewell-health/carewell-backend/pkg/db"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/logger"
	"github.com/google/uuid"
)

func actorID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	return id, nil
}

// PatientGetProfile returns the caller's own profile.
func PatientGetProfile(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := repo.FindByID(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile"))
			return
		}

		responses.WriteSuccess(w, users.FromModel(user))
	}
}

// PatientUpdateProfile applies a partial update to the caller's profile.
// Identity fields (email, aadhar card, role) are not editable.
func PatientUpdateProfile(repo *users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body users.UpdateProfileDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		fields, err := body.Fields()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid profile fields"))
			return
		}

		user, err := repo.UpdateFields(r.Context(), userID, fields)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update profile"))
			return
		}

		responses.WriteSuccess(w, users.FromModel(user))
	}
}

type wellnessResponse struct {
	Goals          wellness.Goals      `json:"goals"`
	RecentActivity wellness.Statistics `json:"recentActivity"`
	RecentLogs     []logs.LogDTO       `json:"recentLogs"`
}

// PatientGetWellness returns the caller's 7-day summary with up to 5 recent
// logs.
func PatientGetWellness(svc wellness.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.ComputeWellness(r.Context(), userID, wellness.SelfWindowDays, wellness.SelfLogLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, wellnessResponse{
			Goals:          summary.Goals,
			RecentActivity: summary.Statistics,
			RecentLogs:     summary.RecentLogs,
		})
	}
}

// PatientListLogs returns the caller's full log history, newest first.
func PatientListLogs(repo *logs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, err := repo.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list logs"))
			return
		}

		responses.WriteSuccess(w, logs.FromModels(entries))
	}
}

// PatientCreateLog records one daily log. The (user, date) unique index
// arbitrates concurrent submissions for the same day.
func PatientCreateLog(repo *logs.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body logs.CreateLogRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		date, err := body.ParseDate()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid date"))
			return
		}

		entry, err := repo.Create(r.Context(), logs.CreateLogDTO{
			UserID:        userID,
			Date:          date,
			Steps:         body.Steps,
			WaterLitres:   body.WaterLitres,
			SleepHours:    body.SleepHours,
			ActiveMinutes: body.ActiveMinutes,
			GoalsMet:      body.GoalsMet,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "ux_daily_logs_user_date") {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "a log already exists for this date"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create log"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, logs.FromModel(entry))
	}
}

// PatientListReminders returns the caller's reminders ordered by due date.
func PatientListReminders(repo *reminders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entries, err := repo.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reminders"))
			return
		}

		responses.WriteSuccess(w, reminders.FromModels(entries))
	}
}

// PatientCreateReminder records a preventive-care reminder for the caller.
func PatientCreateReminder(repo *reminders.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body reminders.CreateReminderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dueDate, err := time.Parse("2006-01-02", body.DueDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid due date"))
			return
		}

		reminder, err := repo.Create(r.Context(), userID, body.Title, dueDate)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create reminder"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, reminders.FromModel(reminder))
	}
}
