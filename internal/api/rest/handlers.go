package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/service"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	fixtures *service.FixtureService
	cfg      *config.Config
	logger   *logrus.Logger
}

// NewHandler creates a new handler
func NewHandler(fixtures *service.FixtureService, cfg *config.Config, logger *logrus.Logger) *Handler {
	return &Handler{fixtures: fixtures, cfg: cfg, logger: logger}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": h.cfg.App.Name,
		"leagues": len(h.cfg.Leagues),
	})
}

// GetTeams returns the static team list of the requested league
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.fixtures.GetTeams(h.league(r))
	if err != nil {
		if errors.Is(err, models.ErrUnknownLeague) {
			respondError(w, http.StatusNotFound, "Unknown league", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, teams)
}

// GetNextFixtures returns a team's upcoming fixtures with predictions
func (h *Handler) GetNextFixtures(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.fixtures.GetNextFixtures(r.Context(), teamID, h.league(r)))
}

// GetLastFixtures returns a team's most recent results with predictions
func (h *Handler) GetLastFixtures(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.fixtures.GetLastFixtures(r.Context(), teamID, h.league(r)))
}

// GetMatchdayFixtures returns the latest round's fixtures with predictions
func (h *Handler) GetMatchdayFixtures(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.fixtures.GetLatestMatchdayFixtures(r.Context(), h.league(r)))
}

// league resolves the league query parameter, defaulting to the first
// configured league so single-league deployments need no parameter at all.
func (h *Handler) league(r *http.Request) string {
	if code := r.URL.Query().Get("league"); code != "" {
		return code
	}
	if len(h.cfg.Leagues) > 0 {
		return h.cfg.Leagues[0].Code
	}
	return ""
}

// teamID parses the path variable, writing a 400 on garbage input.
func (h *Handler) teamID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := mux.Vars(r)["teamID"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid team ID", err)
		return 0, false
	}
	return id, true
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]any{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}

	respondJSON(w, status, response)
}
