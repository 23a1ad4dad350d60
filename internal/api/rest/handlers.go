package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/fortuna/gridiron/internal/cache"
	"github.com/fortuna/gridiron/internal/service"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db             *store.Database
	cache          *cache.RedisCache
	gameService    *service.GameService
	playerService  *service.PlayerService
	historyService *service.HistoryService
}

// NewHandler creates a new handler. The cache may be nil; history
// lookups then always recompute.
func NewHandler(db *store.Database, c *cache.RedisCache) *Handler {
	return &Handler{
		db:             db,
		cache:          c,
		gameService:    service.NewGameService(db, c, nil),
		playerService:  service.NewPlayerService(db),
		historyService: service.NewHistoryService(db),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":  "healthy",
		"service": "gridiron",
	}

	if err := h.db.HealthCheck(); err != nil {
		status["status"] = "degraded"
		status["database"] = err.Error()
	}
	if h.cache != nil {
		if err := h.cache.HealthCheck(r.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = err.Error()
		}
	}

	code := http.StatusOK
	if status["status"] != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}

// GetLiveGames returns all currently live games
func (h *Handler) GetLiveGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.GetLiveGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch live games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// ListGames returns games matching season/week/team filters
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	filter := repository.GameFilter{
		SeasonType: r.URL.Query().Get("season_type"),
		Week:       r.URL.Query().Get("week"),
		TeamID:     r.URL.Query().Get("team"),
	}

	if s := r.URL.Query().Get("season"); s != "" {
		season, err := strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid season", err)
			return
		}
		filter.Season = season
	}

	filter.Limit = 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			filter.Limit = v
		}
	}

	games, err := h.gameService.ListGames(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetGame returns a specific game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// GetGamePlays returns a game's plays with their derived features
func (h *Handler) GetGamePlays(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	filter := repository.PlayFilter{
		PlayType: r.URL.Query().Get("play_type"),
	}
	if d := r.URL.Query().Get("down"); d != "" {
		down, err := strconv.Atoi(d)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid down", err)
			return
		}
		filter.Down = down
	}
	if q := r.URL.Query().Get("quarter"); q != "" {
		quarter, err := strconv.Atoi(q)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid quarter", err)
			return
		}
		filter.Quarter = quarter
	}

	plays, err := h.gameService.GetPlays(r.Context(), gameID, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch plays", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"game_id": gameID,
		"plays":   plays,
		"count":   len(plays),
	})
}

// GetGameSummary returns aggregated play counts for a game
func (h *Handler) GetGameSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	summary, err := h.gameService.GetGameSummary(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game summary not found", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetPlayer returns a player by NFL ID
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	nflID, err := strconv.Atoi(vars["nflID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID", err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), nflID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// SearchPlayers searches for players by name
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}

	limit := 25
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	players, err := h.playerService.SearchPlayers(r.Context(), query, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

// GetTeamHistory returns a team's season-to-date rollup as of a date
func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamID"]

	seasonStr := r.URL.Query().Get("season")
	season, err := strconv.Atoi(seasonStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing or invalid 'season' parameter", err)
		return
	}

	asOf := r.URL.Query().Get("as_of")
	if asOf == "" {
		asOf = time.Now().UTC().Format("2006-01-02")
	}

	if h.cache != nil {
		if cached, err := h.cache.GetTeamHistory(r.Context(), teamID, season, asOf); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(cached))
			return
		}
	}

	stats, err := h.historyService.TeamStatsAsOf(r.Context(), teamID, season, asOf)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute team history", err)
		return
	}

	payload := map[string]interface{}{
		"team_id": teamID,
		"season":  season,
		"as_of":   asOf,
		"stats":   stats,
	}

	if h.cache != nil {
		if data, err := json.Marshal(payload); err == nil {
			_ = h.cache.SetTeamHistory(r.Context(), teamID, season, asOf, string(data))
		}
	}

	respondJSON(w, http.StatusOK, payload)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}
