package controllers

import (
	"net/http"
	"time"

	"github.com/carewell-health/carewell-backend/api/responses"
	"github.com/carewell-health/carewell-backend/internal/content"
)

// PublicHealthInfo serves the static health-topic catalog. No auth.
func PublicHealthInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics := content.HealthTopics()
		responses.WriteSuccess(w, map[string]any{
			"count":  len(topics),
			"topics": topics,
		})
	}
}

// PublicTipOfDay serves the tip for the current date. Deterministic per day.
func PublicTipOfDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, content.TipOfDay(time.Now()))
	}
}
