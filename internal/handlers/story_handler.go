package handlers

import (
	"net/http"
	"strconv"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// StoryHandler handles bedtime story HTTP requests
type StoryHandler struct {
	stories *service.StoryService
}

// NewStoryHandler creates a new story handler
func NewStoryHandler(stories *service.StoryService) *StoryHandler {
	return &StoryHandler{stories: stories}
}

// ListStories returns the filtered library plus the queue and suggestions
func (h *StoryHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.StoryFilter{
		FavoritesOnly: q.Get("favorites") == "true",
		Search:        q.Get("search"),
	}
	if v := q.Get("genre"); v != "" {
		g := models.BedtimeStoryGenre(v)
		filter.Genre = &g
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stories":     h.stories.FilteredStories(filter),
		"queue":       h.stories.QueuedStories(),
		"suggestions": h.stories.SuggestedStories(),
	})
}

// CreateStory adds a parent-authored story to the library
func (h *StoryHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var story models.BedtimeStory
	if err := decodeJSON(r, &story); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid story", err)
		return
	}
	if story.Title == "" {
		respondWithError(w, http.StatusBadRequest, "Title is required", nil)
		return
	}
	if err := h.stories.AddStory(story); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save story", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// DeleteStory removes a story from the library
func (h *StoryHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	if err := h.stories.DeleteStory(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete story", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ToggleFavorite flips a story's favorite flag
func (h *StoryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.stories.ToggleFavorite(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update story", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RateStory sets a story's rating
func (h *StoryHandler) RateStory(w http.ResponseWriter, r *http.Request) {
	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil || rating < 1 || rating > 5 {
		respondWithError(w, http.StatusBadRequest, "Rating must be 1-5", err)
		return
	}
	if err := h.stories.RateStory(r.PathValue("id"), rating); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to rate story", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Enqueue adds a story to the play queue
func (h *StoryHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	if err := h.stories.AddToQueue(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to queue story", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "queued"})
}

// Dequeue removes a story's pending queue entries
func (h *StoryHandler) Dequeue(w http.ResponseWriter, r *http.Request) {
	if err := h.stories.RemoveFromQueue(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to remove from queue", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// PlayQueueItem completes a queue entry and records the read
func (h *StoryHandler) PlayQueueItem(w http.ResponseWriter, r *http.Request) {
	if err := h.stories.PlayStory(r.PathValue("itemId")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to play story", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "played"})
}

// MoveQueueItem shifts a pending queue entry up or down
func (h *StoryHandler) MoveQueueItem(w http.ResponseWriter, r *http.Request) {
	direction, err := strconv.Atoi(r.FormValue("direction"))
	if err != nil || (direction != 1 && direction != -1) {
		respondWithError(w, http.StatusBadRequest, "Direction must be 1 or -1", err)
		return
	}
	if err := h.stories.MoveInQueue(r.PathValue("itemId"), direction); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to move queue entry", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
