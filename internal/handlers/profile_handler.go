package handlers

import (
	"net/http"
	"time"

	"moxiedash/internal/service"
)

// ProfileHandler handles child profile HTTP requests
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// ListProfiles returns every profile and the active one
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"profiles": h.profiles.Profiles(),
	}
	if active, ok := h.profiles.ActiveProfile(); ok {
		resp["activeProfileId"] = active.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateProfile adds a child profile
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}
	birthDate, err := time.Parse("2006-01-02", r.FormValue("birthDate"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid birth date", err)
		return
	}
	p, err := h.profiles.AddProfile(name, r.FormValue("nickname"), birthDate)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// DeleteProfile removes a child profile
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.DeleteProfile(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete profile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ActivateProfile switches the active child
func (h *ProfileHandler) ActivateProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.ActivateProfile(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to activate profile", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
