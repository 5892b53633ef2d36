package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vkc/ponto_backendl/internal/models"
	"github.com/vkc/ponto_backendl/internal/pkg/response"
	"github.com/vkc/ponto_backendl/internal/repositories"
	"github.com/vkc/ponto_backendl/internal/services/moderation"
)

// ActiveShiftsHandler returns the persisted open-shift set as JSON.
func ActiveShiftsHandler(repo *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shifts, err := repo.ListOpen()
		if err != nil {
			log.Printf("DB query error (active shifts): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if shifts == nil {
			shifts = []models.OpenShift{}
		}
		response.RespondWithJSON(w, http.StatusOK, shifts)
	}
}

// EndedShiftsHandler returns closed shifts, newest first.
func EndedShiftsHandler(repo *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := repo.ListHistory(0)
		if err != nil {
			log.Printf("DB query error (ended shifts): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if records == nil {
			records = []models.ShiftRecord{}
		}
		response.RespondWithJSON(w, http.StatusOK, records)
	}
}

// ActorTotalHandler returns one actor's lifetime incident total. Served from
// the cache when it is warm, otherwise from the database.
func ActorTotalHandler(counter *moderation.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID := chi.URLParam(r, "actorID")
		total, err := counter.LifetimeTotal(actorID)
		if err != nil {
			log.Printf("DB query error (actor total): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"actor_id": actorID,
			"total":    total,
		})
	}
}

// IncidentReportHandler returns per-actor incident totals, count descending.
func IncidentReportHandler(counter *moderation.Counter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := counter.Report()
		if err != nil {
			log.Printf("DB query error (incident report): %v", err)
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if report == nil {
			report = []models.ActorCount{}
		}
		response.RespondWithJSON(w, http.StatusOK, report)
	}
}
