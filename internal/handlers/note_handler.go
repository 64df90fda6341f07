package handlers

import (
	"net/http"

	"moxiedash/internal/models"
	"moxiedash/internal/service"
)

// NoteHandler handles parental note HTTP requests
type NoteHandler struct {
	notes *service.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// ListNotes returns the filtered journal plus tags and writing prompts
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.NoteFilter{
		Tag:    q.Get("tag"),
		Search: q.Get("search"),
	}
	if v := q.Get("category"); v != "" {
		c := models.NoteCategory(v)
		filter.Category = &c
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notes":   h.notes.FilteredNotes(filter),
		"tags":    h.notes.AllTags(),
		"prompts": h.notes.JournalPrompts(),
	})
}

// CreateNote adds a journal entry
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var n models.ParentalNote
	if err := decodeJSON(r, &n); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid note", err)
		return
	}
	if n.Title == "" && n.Content == "" {
		respondWithError(w, http.StatusBadRequest, "Note is empty", nil)
		return
	}
	created, err := h.notes.AddNote(n)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save note", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateNote replaces a journal entry
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var n models.ParentalNote
	if err := decodeJSON(r, &n); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid note", err)
		return
	}
	n.ID = r.PathValue("id")
	if err := h.notes.UpdateNote(n); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update note", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteNote removes a journal entry
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.DeleteNote(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to delete note", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// TogglePin flips a note's pinned flag
func (h *NoteHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.TogglePin(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to update note", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
