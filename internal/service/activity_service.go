package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// ActivityService manages the activity suggestions screen
type ActivityService struct {
	mu       sync.Mutex
	store    prefs.Store
	defaults []models.Activity
	now      Clock
	settings models.ActivitySuggestionsSettings
}

// NewActivityService creates the service, loads any stored settings, and
// resets the weekly counter when the stored week has rolled over
func NewActivityService(store prefs.Store, defaults []models.Activity, now Clock) *ActivityService {
	s := &ActivityService{store: store, defaults: defaults, now: now}
	s.settings = models.NewActivitySuggestionsSettings(now())

	if prefs.Load(store, activitySettingsKey, &s.settings) {
		if !sameWeek(s.settings.WeekStartDate, now()) {
			s.settings.ActivitiesThisWeek = 0
			s.settings.WeekStartDate = now()
			s.save()
		}
	}
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *ActivityService) Settings() models.ActivitySuggestionsSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// ActivityFilter is the active filter state for the activity list
type ActivityFilter struct {
	FavoritesOnly bool
	Category      *models.ActivityCategory
	Duration      *models.ActivityDuration
	Search        string
}

// FilteredActivities applies the filter to the stored collection. An empty
// collection yields an empty result; display reads never populate defaults.
func (s *ActivityService) FilteredActivities(f ActivityFilter) []models.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Activity, 0, len(s.settings.Activities))
	for _, a := range s.settings.Activities {
		if f.FavoritesOnly && !a.IsFavorite {
			continue
		}
		if f.Category != nil && a.Category != *f.Category {
			continue
		}
		if f.Duration != nil && a.Duration != *f.Duration {
			continue
		}
		if !a.MatchesAge(s.settings.ChildAgeGroup) {
			continue
		}
		if !containsFold(a.Title, f.Search) && !containsFold(a.Description, f.Search) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// DefaultActivities returns the built-in activity set the service was
// constructed with, for first-run display before any customization
func (s *ActivityService) DefaultActivities() []models.Activity {
	return s.defaults
}

// ToggleFavorite flips an activity's favorite flag. A mutation against an
// empty collection first copies the default set in, then applies the flip.
func (s *ActivityService) ToggleFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.populateIfEmpty()
	for i := range s.settings.Activities {
		if s.settings.Activities[i].ID == id {
			s.settings.Activities[i].IsFavorite = !s.settings.Activities[i].IsFavorite
			break
		}
	}
	return s.save()
}

// MarkCompleted records one completion of an activity: bumps its counter
// and timestamp, and advances the weekly progress tally
func (s *ActivityService) MarkCompleted(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.populateIfEmpty()
	for i := range s.settings.Activities {
		if s.settings.Activities[i].ID == id {
			now := s.now()
			s.settings.Activities[i].TimesCompleted++
			s.settings.Activities[i].LastCompletedAt = &now
			break
		}
	}
	s.settings.ActivitiesThisWeek++
	s.settings.CompletedIDs = append(s.settings.CompletedIDs, id)
	return s.save()
}

// AddActivity appends a parent-created activity. Population precedes the
// append, so adding to an empty collection yields defaults plus the new item.
func (s *ActivityService) AddActivity(a models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.populateIfEmpty()
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.IsCustom = true
	s.settings.Activities = append(s.settings.Activities, a)
	return s.save()
}

// SetChildAgeGroup updates the age group used by the age filter
func (s *ActivityService) SetChildAgeGroup(g models.AgeGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ChildAgeGroup = g
	return s.save()
}

// SetWeeklyGoal updates the weekly activity target
func (s *ActivityService) SetWeeklyGoal(goal int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.WeeklyGoal = goal
	return s.save()
}

func (s *ActivityService) populateIfEmpty() {
	if len(s.settings.Activities) == 0 {
		s.settings.Activities = append([]models.Activity(nil), s.defaults...)
	}
}

func (s *ActivityService) save() error {
	if err := prefs.Save(s.store, activitySettingsKey, s.settings); err != nil {
		return fmt.Errorf("failed to save activity settings: %w", err)
	}
	return nil
}
