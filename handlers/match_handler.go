package handlers

import (
	"net/http"

	"github.com/footylab/league-system/middleware"
	"github.com/footylab/league-system/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, services.TimeFrameAll)
}

func (h *MatchHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, services.TimeFrameUpcoming)
}

func (h *MatchHandler) ListPast(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, services.TimeFramePast)
}

func (h *MatchHandler) list(w http.ResponseWriter, r *http.Request, frame services.MatchTimeFrame) {
	matches, err := h.matchService.List(r.Context(), frame)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	matchID, err := idParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetByID(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := idParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.UpdateScore(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, match, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	matchID, err := idParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.Delete(r.Context(), matchID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MatchHandler) MySchedule(w http.ResponseWriter, r *http.Request) {
	h.refereeSchedule(w, r, services.TimeFrameAll)
}

func (h *MatchHandler) MyUpcomingSchedule(w http.ResponseWriter, r *http.Request) {
	h.refereeSchedule(w, r, services.TimeFrameUpcoming)
}

func (h *MatchHandler) MyPastSchedule(w http.ResponseWriter, r *http.Request) {
	h.refereeSchedule(w, r, services.TimeFramePast)
}

func (h *MatchHandler) refereeSchedule(w http.ResponseWriter, r *http.Request, frame services.MatchTimeFrame) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	matches, err := h.matchService.ListByReferee(r.Context(), userID, frame)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
