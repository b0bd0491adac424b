package handler

import (
	"net/http"

	"github.com/hoopsight/hoopsight/internal/api/respond"
)

// GetAllInjuries returns current injuries across all teams.
func (h *Handler) GetAllInjuries(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	result, err := h.injuries.AllInjuries(r.Context(), force)
	if err != nil {
		respond.WriteInjuryError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, result)
}

// GetTeamInjuries returns current injuries and aggregate impact for one team.
func (h *Handler) GetTeamInjuries(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		respond.WriteError(w, http.StatusBadRequest, "team parameter is required")
		return
	}
	force := r.URL.Query().Get("force") == "true"

	result, err := h.injuries.TeamInjuries(r.Context(), team, force)
	if err != nil {
		respond.WriteInjuryError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, result)
}

// GetMatchupInjuries returns both teams' injuries and the net injury edge.
func (h *Handler) GetMatchupInjuries(w http.ResponseWriter, r *http.Request) {
	team1 := r.URL.Query().Get("team1")
	team2 := r.URL.Query().Get("team2")
	if team1 == "" || team2 == "" {
		respond.WriteError(w, http.StatusBadRequest, "team1 and team2 parameters are required")
		return
	}

	result, err := h.injuries.MatchupInjuries(r.Context(), team1, team2)
	if err != nil {
		respond.WriteInjuryError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, result)
}
