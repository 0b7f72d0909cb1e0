package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dkovac/askhub/internal/service"
	"github.com/dkovac/askhub/internal/transport/http/middleware"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	view, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
		} else {
			log.Printf("ERROR get profile: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *ProfileHandler) GetResearcher(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.GetResearcherProfile(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR get researcher profile: %v", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	// No profile yet is not an error; the client renders an empty form.
	writeJSON(w, http.StatusOK, map[string]any{"profile": profile})
}

func (h *ProfileHandler) PatchResearcher(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.ResearcherProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpsertResearcherProfile(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrProfileReadback) {
			writeError(w, http.StatusInternalServerError, "Failed to read back profile")
		} else {
			log.Printf("ERROR upsert researcher profile: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"profile": profile})
}
