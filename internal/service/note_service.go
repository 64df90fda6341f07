package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// NoteService manages the parental notes journal
type NoteService struct {
	mu       sync.Mutex
	store    prefs.Store
	now      Clock
	settings models.ParentalNotesSettings
}

// NewNoteService creates the service and loads any stored settings
func NewNoteService(store prefs.Store, now Clock) *NoteService {
	s := &NoteService{store: store, now: now}
	s.settings = models.NewParentalNotesSettings()
	prefs.Load(store, parentalNotesKey, &s.settings)
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *NoteService) Settings() models.ParentalNotesSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// NoteFilter is the active filter state for the note list
type NoteFilter struct {
	Category *models.NoteCategory
	Tag      string
	Search   string
}

// FilteredNotes applies the filter and sorts pinned notes first, then by
// creation time in the configured direction. Both sorts are stable.
func (s *NoteService) FilteredNotes(f NoteFilter) []models.ParentalNote {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.ParentalNote, 0, len(s.settings.Notes))
	for _, n := range s.settings.Notes {
		if !s.settings.ShowPrivateNotes && n.IsPrivate {
			continue
		}
		if f.Category != nil && n.Category != *f.Category {
			continue
		}
		if f.Tag != "" && !n.HasTag(f.Tag) {
			continue
		}
		if !containsFold(n.Title, f.Search) && !containsFold(n.Content, f.Search) {
			continue
		}
		result = append(result, n)
	}
	newestFirst := s.settings.SortNewestFirst
	sort.SliceStable(result, func(i, j int) bool {
		if newestFirst {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].IsPinned && !result[j].IsPinned
	})
	return result
}

// AddNote appends a journal entry, assigning an id and timestamps. New tags
// on the note are folded into the custom tag set.
func (s *NoteService) AddNote(n models.ParentalNote) (models.ParentalNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = now
	n.UpdatedAt = now
	s.settings.Notes = append(s.settings.Notes, n)
	s.mergeTags(n.Tags)
	return n, s.save()
}

// UpdateNote replaces a note's content in place, preserving its creation
// time and refreshing its update time
func (s *NoteService) UpdateNote(n models.ParentalNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Notes {
		if s.settings.Notes[i].ID == n.ID {
			n.CreatedAt = s.settings.Notes[i].CreatedAt
			n.UpdatedAt = s.now()
			s.settings.Notes[i] = n
			s.mergeTags(n.Tags)
			break
		}
	}
	return s.save()
}

// TogglePin flips a note's pinned flag
func (s *NoteService) TogglePin(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Notes {
		if s.settings.Notes[i].ID == id {
			s.settings.Notes[i].IsPinned = !s.settings.Notes[i].IsPinned
			break
		}
	}
	return s.save()
}

// DeleteNote removes a note by id
func (s *NoteService) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.settings.Notes[:0]
	for _, n := range s.settings.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.settings.Notes = kept
	return s.save()
}

// SetShowPrivateNotes toggles whether private notes appear in the list
func (s *NoteService) SetShowPrivateNotes(show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ShowPrivateNotes = show
	return s.save()
}

// SetSortNewestFirst sets the creation-time sort direction
func (s *NoteService) SetSortNewestFirst(newestFirst bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SortNewestFirst = newestFirst
	return s.save()
}

// AllTags returns the custom tags plus every tag in use on a note, without
// duplicates
func (s *NoteService) AllTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var tags []string
	for _, t := range s.settings.CustomTags {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	for _, n := range s.settings.Notes {
		for _, t := range n.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// JournalPrompts returns the built-in writing prompts
func (s *NoteService) JournalPrompts() []models.JournalPrompt {
	return models.JournalPrompts()
}

func (s *NoteService) mergeTags(tags []string) {
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		known := false
		for _, existing := range s.settings.CustomTags {
			if existing == t {
				known = true
				break
			}
		}
		if !known {
			s.settings.CustomTags = append(s.settings.CustomTags, t)
		}
	}
}

func (s *NoteService) save() error {
	if err := prefs.Save(s.store, parentalNotesKey, s.settings); err != nil {
		return fmt.Errorf("failed to save parental notes: %w", err)
	}
	return nil
}
