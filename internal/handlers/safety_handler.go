package handlers

import (
	"net/http"
	"strconv"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// SafetyHandler handles safety alert HTTP requests
type SafetyHandler struct {
	safety *service.SafetyService
}

// NewSafetyHandler creates a new safety handler
func NewSafetyHandler(safety *service.SafetyService) *SafetyHandler {
	return &SafetyHandler{safety: safety}
}

// GetSafety returns the alert settings and recent flags
func (h *SafetyHandler) GetSafety(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = parsed
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings":   h.safety.Settings(),
		"flags":      h.safety.RecentFlags(limit),
		"unreviewed": h.safety.UnreviewedCount(),
	})
}

// RecordFlag stores a content flag reported by the robot
func (h *SafetyHandler) RecordFlag(w http.ResponseWriter, r *http.Request) {
	var flag models.ContentFlag
	if err := decodeJSON(r, &flag); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid flag", err)
		return
	}
	if flag.Category == "" {
		respondWithError(w, http.StatusBadRequest, "Category is required", nil)
		return
	}
	created, err := h.safety.RecordFlag(flag)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to record flag", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ReviewFlag marks a flag as reviewed
func (h *SafetyHandler) ReviewFlag(w http.ResponseWriter, r *http.Request) {
	if err := h.safety.MarkReviewed(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update flag", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateSafetySettings changes the alerting toggles
func (h *SafetyHandler) UpdateSafetySettings(w http.ResponseWriter, r *http.Request) {
	if v := r.FormValue("emailOnFlag"); v != "" {
		if err := h.safety.SetEmailOnFlag(v == "true"); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	if daily, weekly := r.FormValue("dailySummary"), r.FormValue("weeklySummary"); daily != "" || weekly != "" {
		settings := h.safety.Settings()
		d, wk := settings.DailySummary, settings.WeeklySummary
		if daily != "" {
			d = daily == "true"
		}
		if weekly != "" {
			wk = weekly == "true"
		}
		if err := h.safety.SetSummaries(d, wk); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	if v := r.FormValue("instantNotifications"); v != "" {
		if err := h.safety.SetInstantNotifications(v == "true"); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateCategorySetting replaces one flag category's alerting config
func (h *SafetyHandler) UpdateCategorySetting(w http.ResponseWriter, r *http.Request) {
	var setting models.CategoryAlertSetting
	if err := decodeJSON(r, &setting); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid category setting", err)
		return
	}
	category := models.FlagCategory(r.PathValue("category"))
	if err := h.safety.SetCategorySetting(category, setting); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
