package handlers

import (
	"net/http"

	"github.com/footylab/league-system/services"
)

type LeagueHandler struct {
	statsService services.StatisticsService
}

func NewLeagueHandler(statsService services.StatisticsService) *LeagueHandler {
	return &LeagueHandler{statsService: statsService}
}

// PointsTable serves the full league ranking, recomputed from the current
// match snapshot on every request.
func (h *LeagueHandler) PointsTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.statsService.PointsTable(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, table, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
