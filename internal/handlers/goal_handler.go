package handlers

import (
	"net/http"
	"strconv"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// GoalHandler handles learning goal HTTP requests
type GoalHandler struct {
	goals *service.GoalService
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goals *service.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// ListGoals returns the filtered goal list
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.GoalFilter{Search: q.Get("search")}
	if v := q.Get("subject"); v != "" {
		s := models.LearningSubject(v)
		filter.Subject = &s
	}
	if v := q.Get("priority"); v != "" {
		p := models.GoalPriority(v)
		filter.Priority = &p
	}
	writeJSON(w, http.StatusOK, h.goals.FilteredGoals(filter))
}

// CreateGoal adds a learning goal
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var g models.ParentLearningGoal
	if err := decodeJSON(r, &g); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid goal", err)
		return
	}
	if g.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required", nil)
		return
	}
	created, err := h.goals.AddGoal(g)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save goal", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteGoal removes a goal
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.goals.DeleteGoal(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete goal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// IncrementProgress advances a goal's counter
func (h *GoalHandler) IncrementProgress(w http.ResponseWriter, r *http.Request) {
	by := 1
	if v := r.FormValue("by"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid increment", err)
			return
		}
		by = parsed
	}
	if err := h.goals.IncrementProgress(r.PathValue("id"), by); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update goal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DecrementProgress steps a goal's counter back
func (h *GoalHandler) DecrementProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.goals.DecrementProgress(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update goal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AddNote attaches a note to a goal
func (h *GoalHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	content := r.FormValue("content")
	if content == "" {
		respondWithError(w, http.StatusBadRequest, "Content is required", nil)
		return
	}
	if err := h.goals.AddNote(r.PathValue("id"), content); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to add note", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// ToggleMilestone flips a milestone's completion state
func (h *GoalHandler) ToggleMilestone(w http.ResponseWriter, r *http.Request) {
	if err := h.goals.ToggleMilestone(r.PathValue("id"), r.PathValue("milestoneId")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update milestone", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
