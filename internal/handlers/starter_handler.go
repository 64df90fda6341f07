package handlers

import (
	"net/http"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// StarterHandler handles conversation starter HTTP requests
type StarterHandler struct {
	starters *service.StarterService
}

// NewStarterHandler creates a new starter handler
func NewStarterHandler(starters *service.StarterService) *StarterHandler {
	return &StarterHandler{starters: starters}
}

// ListStarters returns the filtered starter list
func (h *StarterHandler) ListStarters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.StarterFilter{
		FavoritesOnly: q.Get("favorites") == "true",
		Search:        q.Get("search"),
	}
	if v := q.Get("category"); v != "" {
		c := models.StarterCategory(v)
		filter.Category = &c
	}
	writeJSON(w, http.StatusOK, h.starters.FilteredStarters(filter))
}

// CreateStarter adds a parent-authored starter
func (h *StarterHandler) CreateStarter(w http.ResponseWriter, r *http.Request) {
	prompt := r.FormValue("prompt")
	if prompt == "" {
		respondWithError(w, http.StatusBadRequest, "Prompt is required", nil)
		return
	}
	starter, err := h.starters.AddStarter(
		prompt,
		models.StarterCategory(r.FormValue("category")),
		models.StarterAgeRange(r.FormValue("ageRange")),
		r.FormValue("tags"),
	)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save starter", err)
		return
	}
	writeJSON(w, http.StatusCreated, starter)
}

// DeleteStarter removes a starter
func (h *StarterHandler) DeleteStarter(w http.ResponseWriter, r *http.Request) {
	if err := h.starters.DeleteStarter(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete starter", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ToggleFavorite flips a starter's favorite flag
func (h *StarterHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.starters.ToggleFavorite(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update starter", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UseStarter counts a use and copies the prompt for sending
func (h *StarterHandler) UseStarter(w http.ResponseWriter, r *http.Request) {
	if err := h.starters.UseStarter(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to use starter", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
