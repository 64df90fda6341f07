package handlers

import (
	"net/http"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// QuietHoursHandler handles quiet hours HTTP requests
type QuietHoursHandler struct {
	quiet *service.QuietHoursService
}

// NewQuietHoursHandler creates a new quiet hours handler
func NewQuietHoursHandler(quiet *service.QuietHoursService) *QuietHoursHandler {
	return &QuietHoursHandler{quiet: quiet}
}

// GetQuietHours returns the settings, current status, and presets
func (h *QuietHoursHandler) GetQuietHours(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings": h.quiet.Settings(),
		"status":   h.quiet.CurrentStatus(),
		"presets":  service.PresetSchedules(),
	})
}

// CreateSchedule adds a quiet window
func (h *QuietHoursHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var sched models.QuietSchedule
	if err := decodeJSON(r, &sched); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid schedule", err)
		return
	}
	if sched.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required", nil)
		return
	}
	created, err := h.quiet.AddSchedule(sched)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteSchedule removes a quiet window
func (h *QuietHoursHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.quiet.RemoveSchedule(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ToggleSchedule flips a quiet window's enabled flag
func (h *QuietHoursHandler) ToggleSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.quiet.ToggleSchedule(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateQuietHours changes the feature-level settings
func (h *QuietHoursHandler) UpdateQuietHours(w http.ResponseWriter, r *http.Request) {
	if v := r.FormValue("enabled"); v != "" {
		if err := h.quiet.SetEnabled(v == "true"); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	if v := r.FormValue("quietMessage"); v != "" {
		if err := h.quiet.SetQuietMessage(v); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	if v := r.FormValue("allowEmergency"); v != "" {
		if err := h.quiet.SetEmergencyOverride(v == "true", r.FormValue("emergencyKeyword")); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
