package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"moxiedash/internal/clipboard"
	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// StarterService manages the conversation starters screen. Unlike the
// other features, the stored document is a bare array and the default set
// is written back at load time when nothing is stored yet.
type StarterService struct {
	mu       sync.Mutex
	store    prefs.Store
	clip     clipboard.Clipboard
	starters []models.ConversationStarter
}

// NewStarterService creates the service, loading stored starters or
// seeding and persisting the default set on first run
func NewStarterService(store prefs.Store, defaults []models.ConversationStarter, clip clipboard.Clipboard) *StarterService {
	s := &StarterService{store: store, clip: clip}
	if !prefs.Load(store, conversationStartersKey, &s.starters) {
		s.starters = append([]models.ConversationStarter(nil), defaults...)
		s.save()
	}
	return s
}

// Starters returns a snapshot of the full starter list
func (s *StarterService) Starters() []models.ConversationStarter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ConversationStarter(nil), s.starters...)
}

// StarterFilter is the active filter state for the starter list
type StarterFilter struct {
	Category      *models.StarterCategory
	FavoritesOnly bool
	Search        string
}

// FilteredStarters applies the filter, then sorts favorites first while
// otherwise preserving insertion order
func (s *StarterService) FilteredStarters(f StarterFilter) []models.ConversationStarter {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.ConversationStarter, 0, len(s.starters))
	for _, starter := range s.starters {
		if f.Category != nil && starter.Category != *f.Category {
			continue
		}
		if f.FavoritesOnly && !starter.IsFavorite {
			continue
		}
		if !containsFold(starter.Prompt, f.Search) {
			continue
		}
		result = append(result, starter)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].IsFavorite && !result[j].IsFavorite
	})
	return result
}

// ToggleFavorite flips a starter's favorite flag
func (s *StarterService) ToggleFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.starters {
		if s.starters[i].ID == id {
			s.starters[i].IsFavorite = !s.starters[i].IsFavorite
			return s.save()
		}
	}
	return nil
}

// UseStarter bumps a starter's usage counter and copies its prompt to the
// clipboard. The copy happens even when the id is unknown, matching the
// send-what-was-displayed behavior.
func (s *StarterService) UseStarter(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prompt string
	var err error
	for i := range s.starters {
		if s.starters[i].ID == id {
			s.starters[i].TimesUsed++
			prompt = s.starters[i].Prompt
			err = s.save()
			break
		}
	}
	if prompt != "" && s.clip != nil {
		s.clip.Copy(prompt)
	}
	return err
}

// AddStarter appends a parent-authored starter. Comma-separated tags are
// split and trimmed.
func (s *StarterService) AddStarter(prompt string, category models.StarterCategory, ageRange models.StarterAgeRange, tagsText string) (models.ConversationStarter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tags []string
	for _, t := range strings.Split(tagsText, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	starter := models.ConversationStarter{
		ID:       uuid.New().String(),
		Prompt:   prompt,
		Category: category,
		AgeRange: ageRange,
		Tags:     tags,
		IsCustom: true,
	}
	s.starters = append(s.starters, starter)
	return starter, s.save()
}

// DeleteStarter removes a starter by id
func (s *StarterService) DeleteStarter(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.starters[:0]
	for _, starter := range s.starters {
		if starter.ID != id {
			kept = append(kept, starter)
		}
	}
	s.starters = kept
	return s.save()
}

func (s *StarterService) save() error {
	if err := prefs.Save(s.store, conversationStartersKey, s.starters); err != nil {
		return fmt.Errorf("failed to save conversation starters: %w", err)
	}
	return nil
}
