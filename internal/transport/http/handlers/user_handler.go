package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/dkovac/askhub/internal/service"
	"github.com/google/uuid"
)

type UserHandler struct {
	profileService *service.ProfileService
}

func NewUserHandler(profileService *service.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.profileService.ListUsers(r.Context())
	if err != nil {
		log.Printf("ERROR list users: %v", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if users == nil {
		users = []domain.UserWithStats{}
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	view, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
		} else {
			log.Printf("ERROR get user: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, view)
}
