package rest

import (
	"encoding/json"
	"net/http"

	"github.com/fortuna/gridiron/internal/backfill"
)

// BackfillHandler handles backfill job requests
type BackfillHandler struct {
	service *backfill.Service
}

// NewBackfillHandler creates a backfill handler. The service may be nil
// when the deployment runs without a backfill worker.
func NewBackfillHandler(service *backfill.Service) *BackfillHandler {
	return &BackfillHandler{service: service}
}

type apiBackfillRequest struct {
	Season     int    `json:"season"`
	SeasonType string `json:"season_type"`
	Week       string `json:"week"`
	GameID     string `json:"game_id"`
}

// HandleBackfillRequest enqueues a new backfill job
func (h *BackfillHandler) HandleBackfillRequest(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		respondError(w, http.StatusServiceUnavailable, "Backfill service not available", nil)
		return
	}

	var req apiBackfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	job, err := h.service.Enqueue(r.Context(), backfill.Request{
		Season:     req.Season,
		SeasonType: req.SeasonType,
		Week:       req.Week,
		GameID:     req.GameID,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid backfill request", err)
		return
	}

	respondJSON(w, http.StatusAccepted, jobPayload(job))
}

// HandleBackfillStatus returns the active job and recent history
func (h *BackfillHandler) HandleBackfillStatus(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		respondError(w, http.StatusServiceUnavailable, "Backfill service not available", nil)
		return
	}

	summary, err := h.service.GetStatus(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch backfill status", err)
		return
	}

	history := make([]map[string]interface{}, 0, len(summary.History))
	for _, job := range summary.History {
		history = append(history, jobPayload(job))
	}

	payload := map[string]interface{}{
		"history": history,
	}
	if summary.ActiveJob != nil {
		payload["active_job"] = jobPayload(summary.ActiveJob)
	}

	respondJSON(w, http.StatusOK, payload)
}

func jobPayload(job *backfill.Job) map[string]interface{} {
	payload := map[string]interface{}{
		"job_id":       job.JobID,
		"job_type":     job.JobType,
		"status":       job.Status,
		"games_total":  job.GamesTotal,
		"games_done":   job.GamesDone,
		"games_failed": job.GamesFailed,
		"created_at":   job.CreatedAt,
	}

	if job.Season.Valid {
		payload["season"] = job.Season.Int32
	}
	if job.SeasonType.Valid {
		payload["season_type"] = job.SeasonType.String
	}
	if job.Week.Valid {
		payload["week"] = job.Week.String
	}
	if job.GameID.Valid {
		payload["game_id"] = job.GameID.String
	}
	if job.ErrorMessage.Valid {
		payload["error_message"] = job.ErrorMessage.String
	}
	if job.StartedAt.Valid {
		payload["started_at"] = job.StartedAt.Time
	}
	if job.FinishedAt.Valid {
		payload["finished_at"] = job.FinishedAt.Time
	}

	return payload
}
