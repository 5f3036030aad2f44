package handlers

import (
	"net/http"

	"github.com/footylab/league-system/middleware"
	"github.com/footylab/league-system/models"
	"github.com/footylab/league-system/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, user, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListManagers returns all team-manager users, for assigning one to a team.
func (h *UserHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, models.RoleTeamManager)
}

// ListPlayers returns all player-role users, for creating player profiles.
func (h *UserHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	h.listByRole(w, r, models.RolePlayer)
}

func (h *UserHandler) listByRole(w http.ResponseWriter, r *http.Request, role models.UserRole) {
	users, err := h.userService.ListByRole(r.Context(), role)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, users, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.UpdateProfileInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, user, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
