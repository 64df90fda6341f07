package handlers

import (
	"net/http"
	"strconv"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// ActivityHandler handles activity suggestion HTTP requests
type ActivityHandler struct {
	activities *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activities *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// ListActivities returns the filtered activity list and progress summary
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ActivityFilter{
		FavoritesOnly: q.Get("favorites") == "true",
		Search:        q.Get("search"),
	}
	if v := q.Get("category"); v != "" {
		c := models.ActivityCategory(v)
		filter.Category = &c
	}
	if v := q.Get("duration"); v != "" {
		d := models.ActivityDuration(v)
		filter.Duration = &d
	}

	settings := h.activities.Settings()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activities":         h.activities.FilteredActivities(filter),
		"suggestions":        h.activities.DefaultActivities(),
		"weeklyGoal":         settings.WeeklyGoal,
		"activitiesThisWeek": settings.ActivitiesThisWeek,
		"childAgeGroup":      settings.ChildAgeGroup,
	})
}

// CreateActivity adds a parent-created activity
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var a models.Activity
	if err := decodeJSON(r, &a); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid activity", err)
		return
	}
	if a.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required", nil)
		return
	}
	if err := h.activities.AddActivity(a); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save activity", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// ToggleFavorite flips an activity's favorite flag
func (h *ActivityHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.activities.ToggleFavorite(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update activity", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MarkCompleted records one completion of an activity
func (h *ActivityHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	if err := h.activities.MarkCompleted(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to record completion", err)
		return
	}
	settings := h.activities.Settings()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activitiesThisWeek": settings.ActivitiesThisWeek,
		"weeklyGoal":         settings.WeeklyGoal,
	})
}

// UpdateSettings changes the age group and weekly goal
func (h *ActivityHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if v := r.FormValue("ageGroup"); v != "" {
		if err := h.activities.SetChildAgeGroup(models.AgeGroup(v)); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	if v := r.FormValue("weeklyGoal"); v != "" {
		goal, err := strconv.Atoi(v)
		if err != nil || goal < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid weekly goal", err)
			return
		}
		if err := h.activities.SetWeeklyGoal(goal); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to save settings", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
