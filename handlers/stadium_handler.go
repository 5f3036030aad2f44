package handlers

import (
	"errors"
	"net/http"

	"github.com/footylab/league-system/middleware"
	"github.com/footylab/league-system/services"
)

type StadiumHandler struct {
	stadiumService services.StadiumService
}

func NewStadiumHandler(stadiumService services.StadiumService) *StadiumHandler {
	return &StadiumHandler{stadiumService: stadiumService}
}

func (h *StadiumHandler) List(w http.ResponseWriter, r *http.Request) {
	stadiums, err := h.stadiumService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stadiums, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StadiumHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	stadiumID, err := idParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stadium, err := h.stadiumService.GetByID(r.Context(), stadiumID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stadium, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StadiumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateStadiumInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stadium, err := h.stadiumService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, stadium, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StadiumHandler) Update(w http.ResponseWriter, r *http.Request) {
	stadiumID, err := idParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	requester, err := requesterFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.UpdateStadiumInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stadium, err := h.stadiumService.Update(r.Context(), requester, stadiumID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stadium, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MyStadiums lists the stadiums managed by the authenticated user.
func (h *StadiumHandler) MyStadiums(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	stadiums, err := h.stadiumService.ListManagedBy(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stadiums, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StadiumHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	stadiumID, err := idParam(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	requester, err := requesterFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content type required"))
		return
	}

	stadium, err := h.stadiumService.UploadPhoto(r.Context(), requester, stadiumID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stadium, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
