package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// StoryService manages the bedtime stories screen: the story library and
// the play queue
type StoryService struct {
	mu       sync.Mutex
	store    prefs.Store
	defaults []models.BedtimeStory
	now      Clock
	settings models.BedtimeStoriesSettings
}

// NewStoryService creates the service and loads any stored settings
func NewStoryService(store prefs.Store, defaults []models.BedtimeStory, now Clock) *StoryService {
	s := &StoryService{store: store, defaults: defaults, now: now}
	s.settings = models.NewBedtimeStoriesSettings()
	prefs.Load(store, bedtimeStoriesKey, &s.settings)
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *StoryService) Settings() models.BedtimeStoriesSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// StoryFilter is the active filter state for the story library
type StoryFilter struct {
	FavoritesOnly bool
	Genre         *models.BedtimeStoryGenre
	Search        string
}

// FilteredStories applies the filter to the stored library. An empty
// library yields an empty result; display reads never populate defaults.
func (s *StoryService) FilteredStories(f StoryFilter) []models.BedtimeStory {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.BedtimeStory, 0, len(s.settings.Stories))
	for _, story := range s.settings.Stories {
		if f.FavoritesOnly && !story.IsFavorite {
			continue
		}
		if f.Genre != nil && story.Genre != *f.Genre {
			continue
		}
		if !story.SuitsAge(s.settings.ChildAge) {
			continue
		}
		if !containsFold(story.Title, f.Search) && !containsFold(story.Description, f.Search) {
			continue
		}
		result = append(result, story)
	}
	return result
}

// QueuedStory pairs a pending queue item with its resolved story
type QueuedStory struct {
	Item  models.StoryQueueItem
	Story models.BedtimeStory
}

// QueuedStories returns pending queue entries in play order, each resolved
// against the library. Entries whose story has been deleted are dropped
// silently; they are dangling references, not errors.
func (s *StoryService) QueuedStories() []QueuedStory {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]models.StoryQueueItem, 0, len(s.settings.Queue))
	for _, item := range s.settings.Queue {
		if !item.IsCompleted {
			pending = append(pending, item)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].EffectiveDate().Before(pending[j].EffectiveDate())
	})

	result := make([]QueuedStory, 0, len(pending))
	for _, item := range pending {
		if story, ok := s.findStory(item.StoryID); ok {
			result = append(result, QueuedStory{Item: item, Story: story})
		}
	}
	return result
}

// SuggestedStories returns library stories worth queueing next: not already
// pending, age-appropriate, matching the preferred genres when any are set,
// favorites first
func (s *StoryService) SuggestedStories() []models.BedtimeStory {
	s.mu.Lock()
	defer s.mu.Unlock()

	queued := make(map[string]bool)
	for _, item := range s.settings.Queue {
		if !item.IsCompleted {
			queued[item.StoryID] = true
		}
	}

	result := make([]models.BedtimeStory, 0, len(s.settings.Stories))
	for _, story := range s.settings.Stories {
		if queued[story.ID] {
			continue
		}
		if !story.SuitsAge(s.settings.ChildAge) {
			continue
		}
		if len(s.settings.PreferredGenres) > 0 && !genreIn(s.settings.PreferredGenres, story.Genre) {
			continue
		}
		result = append(result, story)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].IsFavorite && !result[j].IsFavorite
	})
	return result
}

// AddToQueue appends a pending queue entry for the story
func (s *StoryService) AddToQueue(storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Queue = append(s.settings.Queue, models.StoryQueueItem{
		ID:      uuid.New().String(),
		StoryID: storyID,
		AddedAt: s.now(),
	})
	return s.save()
}

// RemoveFromQueue drops every pending queue entry for the story. Completed
// entries stay as history.
func (s *StoryService) RemoveFromQueue(storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.settings.Queue[:0]
	for _, item := range s.settings.Queue {
		if item.StoryID == storyID && !item.IsCompleted {
			continue
		}
		kept = append(kept, item)
	}
	s.settings.Queue = kept
	return s.save()
}

// PlayStory completes a queue entry and records the read on the story.
// Recording the read populates the library from defaults when empty.
func (s *StoryService) PlayStory(queueItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var storyID string
	for i := range s.settings.Queue {
		if s.settings.Queue[i].ID == queueItemID {
			now := s.now()
			s.settings.Queue[i].IsCompleted = true
			s.settings.Queue[i].CompletedAt = &now
			storyID = s.settings.Queue[i].StoryID
			break
		}
	}

	s.populateIfEmpty()
	for i := range s.settings.Stories {
		if s.settings.Stories[i].ID == storyID {
			now := s.now()
			s.settings.Stories[i].TimesRead++
			s.settings.Stories[i].LastReadAt = &now
			break
		}
	}
	return s.save()
}

// UndoComplete returns a completed queue entry to pending and clears its
// completion timestamp
func (s *StoryService) UndoComplete(queueItemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Queue {
		if s.settings.Queue[i].ID == queueItemID {
			s.settings.Queue[i].IsCompleted = false
			s.settings.Queue[i].CompletedAt = nil
			break
		}
	}
	return s.save()
}

// MoveInQueue shifts a pending queue entry one position among pending
// entries only. Completed entries are invisible to the positional
// calculation; the swap is applied at the full-array indices.
func (s *StoryService) MoveInQueue(queueItemID string, direction int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]models.StoryQueueItem, 0, len(s.settings.Queue))
	for _, item := range s.settings.Queue {
		if !item.IsCompleted {
			pending = append(pending, item)
		}
	}

	current := -1
	for i, item := range pending {
		if item.ID == queueItemID {
			current = i
			break
		}
	}
	if current < 0 {
		return nil
	}
	target := current + direction
	if target < 0 || target >= len(pending) {
		return nil
	}

	fullIndex := s.queueIndex(queueItemID)
	targetFullIndex := s.queueIndex(pending[target].ID)
	if fullIndex < 0 || targetFullIndex < 0 {
		return nil
	}
	s.settings.Queue[fullIndex], s.settings.Queue[targetFullIndex] =
		s.settings.Queue[targetFullIndex], s.settings.Queue[fullIndex]
	return s.save()
}

// ToggleFavorite flips a story's favorite flag, populating the library
// from defaults first when it is empty
func (s *StoryService) ToggleFavorite(storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.populateIfEmpty()
	for i := range s.settings.Stories {
		if s.settings.Stories[i].ID == storyID {
			s.settings.Stories[i].IsFavorite = !s.settings.Stories[i].IsFavorite
			break
		}
	}
	return s.save()
}

// RateStory sets a story's one-to-five rating
func (s *StoryService) RateStory(storyID string, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.populateIfEmpty()
	for i := range s.settings.Stories {
		if s.settings.Stories[i].ID == storyID {
			s.settings.Stories[i].Rating = &rating
			break
		}
	}
	return s.save()
}

// AddStory appends a parent-authored story to the library. Population
// precedes the append.
func (s *StoryService) AddStory(story models.BedtimeStory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.populateIfEmpty()
	if story.ID == "" {
		story.ID = uuid.New().String()
	}
	story.IsCustom = true
	s.settings.Stories = append(s.settings.Stories, story)
	return s.save()
}

// DeleteStory removes a story from the library. Queue entries that
// reference it become dangling and are filtered out of queue rendering.
func (s *StoryService) DeleteStory(storyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.settings.Stories[:0]
	for _, story := range s.settings.Stories {
		if story.ID != storyID {
			kept = append(kept, story)
		}
	}
	s.settings.Stories = kept
	return s.save()
}

// SetChildAge updates the age used by the age filter
func (s *StoryService) SetChildAge(age int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ChildAge = age
	return s.save()
}

// SetBedtime updates the nightly reminder time
func (s *StoryService) SetBedtime(hour, minute int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.BedtimeHour = hour
	s.settings.BedtimeMinute = minute
	return s.save()
}

func (s *StoryService) findStory(id string) (models.BedtimeStory, bool) {
	for _, story := range s.settings.Stories {
		if story.ID == id {
			return story, true
		}
	}
	return models.BedtimeStory{}, false
}

func (s *StoryService) queueIndex(id string) int {
	for i, item := range s.settings.Queue {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *StoryService) populateIfEmpty() {
	if len(s.settings.Stories) == 0 {
		s.settings.Stories = append([]models.BedtimeStory(nil), s.defaults...)
	}
}

func genreIn(genres []models.BedtimeStoryGenre, g models.BedtimeStoryGenre) bool {
	for _, genre := range genres {
		if genre == g {
			return true
		}
	}
	return false
}

func (s *StoryService) save() error {
	if err := prefs.Save(s.store, bedtimeStoriesKey, s.settings); err != nil {
		return fmt.Errorf("failed to save bedtime story settings: %w", err)
	}
	return nil
}
