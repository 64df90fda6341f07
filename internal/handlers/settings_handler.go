package handlers

import (
	"net/http"
	"strconv"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// SettingsHandler handles voice and content filter HTTP requests
type SettingsHandler struct {
	voice  *service.VoiceService
	filter *service.FilterService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(voice *service.VoiceService, filter *service.FilterService) *SettingsHandler {
	return &SettingsHandler{voice: voice, filter: filter}
}

// GetVoice returns the voice settings and the available voice personas
func (h *SettingsHandler) GetVoice(w http.ResponseWriter, r *http.Request) {
	voices := make([]map[string]interface{}, 0, len(models.VoiceTypes))
	for _, v := range models.VoiceTypes {
		voices = append(voices, map[string]interface{}{
			"type":        v,
			"displayName": v.DisplayName(),
			"description": v.Description(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings": h.voice.Settings(),
		"voices":   voices,
	})
}

// SelectVoice switches the voice persona
func (h *SettingsHandler) SelectVoice(w http.ResponseWriter, r *http.Request) {
	if err := h.voice.SelectVoice(models.VoiceType(r.PathValue("voice"))); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save voice settings", err)
		return
	}
	writeJSON(w, http.StatusOK, h.voice.Settings())
}

// UpdateVoice changes the voice sliders and toggles
func (h *SettingsHandler) UpdateVoice(w http.ResponseWriter, r *http.Request) {
	set := func(field string, apply func(float64) error) bool {
		v := r.FormValue(field)
		if v == "" {
			return true
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid "+field, err)
			return false
		}
		if err := apply(parsed); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save voice settings", err)
			return false
		}
		return true
	}

	if !set("speed", h.voice.SetSpeakingSpeed) || !set("pitch", h.voice.SetPitch) || !set("volume", h.voice.SetVolume) {
		return
	}
	if v := r.FormValue("language"); v != "" {
		if err := h.voice.SetPreferredLanguage(v); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save voice settings", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.voice.Settings())
}

// ResetVoice restores the factory voice settings
func (h *SettingsHandler) ResetVoice(w http.ResponseWriter, r *http.Request) {
	if err := h.voice.ResetToDefaults(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset voice settings", err)
		return
	}
	writeJSON(w, http.StatusOK, h.voice.Settings())
}

// PlayPreview renders the preview phrase with the current settings
func (h *SettingsHandler) PlayPreview(w http.ResponseWriter, r *http.Request) {
	filename, err := h.voice.PlayPreview(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to play preview", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"audioFile": filename})
}

// GetContentFilter returns the filter settings grouped for display
func (h *SettingsHandler) GetContentFilter(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"settings":         h.filter.Settings(),
		"topicsByCategory": h.filter.TopicsByCategory(),
		"blockedWords":     h.filter.BlockedWords(),
	})
}

// UpdateContentFilter changes the filter level and word lists
func (h *SettingsHandler) UpdateContentFilter(w http.ResponseWriter, r *http.Request) {
	if v := r.FormValue("level"); v != "" {
		if err := h.filter.SetFilterLevel(models.FilterLevel(v)); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save filter settings", err)
			return
		}
	}
	if v := r.FormValue("addWord"); v != "" {
		if err := h.filter.AddBlockedWord(v); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save filter settings", err)
			return
		}
	}
	if v := r.FormValue("removeWord"); v != "" {
		if err := h.filter.RemoveBlockedWord(v); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save filter settings", err)
			return
		}
	}
	if v := r.FormValue("addException"); v != "" {
		if err := h.filter.AddException(v); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save filter settings", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CheckText reports whether a phrase would pass the content filter
func (h *SettingsHandler) CheckText(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		respondWithError(w, http.StatusBadRequest, "Text is required", nil)
		return
	}
	writeJSON(w, http.StatusOK, h.filter.CheckText(text))
}

// ToggleTopic flips one filter topic's blocked flag
func (h *SettingsHandler) ToggleTopic(w http.ResponseWriter, r *http.Request) {
	if err := h.filter.ToggleTopic(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update topic", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateFilterRule adds a custom pattern rule
func (h *SettingsHandler) CreateFilterRule(w http.ResponseWriter, r *http.Request) {
	pattern := r.FormValue("pattern")
	if pattern == "" {
		respondWithError(w, http.StatusBadRequest, "Pattern is required", nil)
		return
	}
	rule, err := h.filter.AddCustomRule(pattern, models.FilterAction(r.FormValue("action")))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save rule", err)
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

// DeleteFilterRule removes a custom pattern rule
func (h *SettingsHandler) DeleteFilterRule(w http.ResponseWriter, r *http.Request) {
	if err := h.filter.DeleteCustomRule(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete rule", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
