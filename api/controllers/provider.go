package controllers

import (
	"net/http"

	"github.com/carewell-health/carewell-backend/api/responses"
	"github.com/carewell-health/carewell-backend/api/validators"
	"github.com/carewell-health/carewell-backend/internal/providers"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func patientIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "patientID"))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid patient id")
	}
	return id, nil
}

type assignPatientRequest struct {
	PatientID string `json:"patientId" validate:"required,uuid"`
}

type assignPatientResponse struct {
	PatientID    uuid.UUID `json:"patientId"`
	PatientName  string    `json:"patientName"`
	PatientEmail string    `json:"patientEmail"`
}

// ProviderAssignPatient claims an unassigned patient for the caller.
func ProviderAssignPatient(svc providers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body assignPatientRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patientID, err := uuid.Parse(body.PatientID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid patient id"))
			return
		}

		patient, err := svc.AssignPatient(r.Context(), providerID, patientID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "patient assigned", assignPatientResponse{
			PatientID:    patient.ID,
			PatientName:  patient.Name,
			PatientEmail: patient.Email,
		})
	}
}

// ProviderListPatients returns the caller's roster.
func ProviderListPatients(svc providers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patients, err := svc.ListPatients(r.Context(), providerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, patients)
	}
}

// ProviderGetPatientOverview returns one patient's profile, goals and
// 30-day statistics. Only the assigned provider may view it.
func ProviderGetPatientOverview(svc providers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patientID, err := patientIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPatientID(ctx, patientID.String())
		}

		overview, err := svc.GetPatientOverview(ctx, providerID, patientID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, overview)
	}
}

type updateComplianceRequest struct {
	ComplianceStatus string `json:"complianceStatus" validate:"required"`
}

type updateComplianceResponse struct {
	PatientID        uuid.UUID              `json:"patientId"`
	PatientName      string                 `json:"patientName"`
	ComplianceStatus enums.ComplianceStatus `json:"complianceStatus"`
}

// ProviderUpdateCompliance overwrites a patient's compliance classification.
func ProviderUpdateCompliance(svc providers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		providerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patientID, err := patientIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateComplianceRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithPatientID(ctx, patientID.String())
		}

		patient, err := svc.UpdateCompliance(ctx, providerID, patientID, body.ComplianceStatus)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "compliance status updated", updateComplianceResponse{
			PatientID:        patient.ID,
			PatientName:      patient.Name,
			ComplianceStatus: patient.ComplianceStatus,
		})
	}
}
