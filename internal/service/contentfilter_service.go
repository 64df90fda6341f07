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

// FilterService manages the content filter screen
type FilterService struct {
	mu       sync.Mutex
	store    prefs.Store
	settings models.ContentFilterSettings
}

// NewFilterService creates the service and loads any stored settings. The
// built-in topic list is seeded and persisted when no topics are stored.
func NewFilterService(store prefs.Store) *FilterService {
	s := &FilterService{store: store}
	s.settings = models.NewContentFilterSettings()
	prefs.Load(store, contentFilterKey, &s.settings)
	if len(s.settings.BlockedTopics) == 0 {
		s.settings.BlockedTopics = models.DefaultBlockedTopics()
		s.save()
	}
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *FilterService) Settings() models.ContentFilterSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// TopicsByCategory groups the topic list by category name
func (s *FilterService) TopicsByCategory() map[string][]models.BlockedTopic {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string][]models.BlockedTopic)
	for _, t := range s.settings.BlockedTopics {
		result[t.Category] = append(result[t.Category], t)
	}
	return result
}

// BlockedWords returns the blocked word list sorted alphabetically
func (s *FilterService) BlockedWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := append([]string(nil), s.settings.BlockedWords...)
	sort.Strings(words)
	return words
}

// SetFilterLevel switches the overall filter aggressiveness
func (s *FilterService) SetFilterLevel(level models.FilterLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.FilterLevel = level
	return s.save()
}

// AddBlockedWord adds a word to the blocked list. Words are trimmed and
// lowercased; empty and duplicate words are ignored.
func (s *FilterService) AddBlockedWord(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || containsString(s.settings.BlockedWords, word) {
		return nil
	}
	s.settings.BlockedWords = append(s.settings.BlockedWords, word)
	return s.save()
}

// RemoveBlockedWord deletes a word from the blocked list
func (s *FilterService) RemoveBlockedWord(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	word = strings.ToLower(strings.TrimSpace(word))
	kept := s.settings.BlockedWords[:0]
	for _, w := range s.settings.BlockedWords {
		if w != word {
			kept = append(kept, w)
		}
	}
	s.settings.BlockedWords = kept
	return s.save()
}

// AddException adds an allowed exception. Exceptions are trimmed and
// lowercased; empty and duplicate entries are ignored.
func (s *FilterService) AddException(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || containsString(s.settings.AllowedExceptions, text) {
		return nil
	}
	s.settings.AllowedExceptions = append(s.settings.AllowedExceptions, text)
	return s.save()
}

// RemoveException deletes an allowed exception
func (s *FilterService) RemoveException(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.ToLower(strings.TrimSpace(text))
	kept := s.settings.AllowedExceptions[:0]
	for _, e := range s.settings.AllowedExceptions {
		if e != text {
			kept = append(kept, e)
		}
	}
	s.settings.AllowedExceptions = kept
	return s.save()
}

// ToggleTopic flips one topic's blocked flag
func (s *FilterService) ToggleTopic(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.BlockedTopics {
		if s.settings.BlockedTopics[i].ID == id {
			s.settings.BlockedTopics[i].IsBlocked = !s.settings.BlockedTopics[i].IsBlocked
			break
		}
	}
	return s.save()
}

// AddCustomRule appends a parent-authored pattern rule, enabled and with an
// id assigned
func (s *FilterService) AddCustomRule(pattern string, action models.FilterAction) (models.CustomFilterRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rule := models.CustomFilterRule{
		ID:        uuid.New().String(),
		Pattern:   strings.TrimSpace(pattern),
		Action:    action,
		IsEnabled: true,
	}
	s.settings.CustomRules = append(s.settings.CustomRules, rule)
	return rule, s.save()
}

// ToggleCustomRule flips one rule's enabled flag
func (s *FilterService) ToggleCustomRule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.CustomRules {
		if s.settings.CustomRules[i].ID == id {
			s.settings.CustomRules[i].IsEnabled = !s.settings.CustomRules[i].IsEnabled
			break
		}
	}
	return s.save()
}

// DeleteCustomRule removes a rule by id
func (s *FilterService) DeleteCustomRule(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.settings.CustomRules[:0]
	for _, r := range s.settings.CustomRules {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.settings.CustomRules = kept
	return s.save()
}

// SetContentToggles configures the four broad content switches
func (s *FilterService) SetContentToggles(externalLinks, personalQuestions, violent, scary bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.BlockExternalLinks = externalLinks
	s.settings.BlockPersonalQuestions = personalQuestions
	s.settings.BlockViolentContent = violent
	s.settings.BlockScaryContent = scary
	return s.save()
}

// FilterVerdict is the outcome of checking a phrase against the filter
type FilterVerdict struct {
	Allowed bool                `json:"allowed"`
	Action  models.FilterAction `json:"action,omitempty"`
	Reason  string              `json:"reason,omitempty"`
}

// CheckText evaluates a phrase against exceptions, custom rules, blocked
// words, and blocked topics, in that order. Exceptions always win.
func (s *FilterService) CheckText(text string) FilterVerdict {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(text)
	for _, e := range s.settings.AllowedExceptions {
		if strings.Contains(lower, e) {
			return FilterVerdict{Allowed: true}
		}
	}
	for _, r := range s.settings.CustomRules {
		if r.IsEnabled && strings.Contains(lower, strings.ToLower(r.Pattern)) {
			return FilterVerdict{
				Allowed: r.Action != models.ActionBlock,
				Action:  r.Action,
				Reason:  "custom rule: " + r.Pattern,
			}
		}
	}
	for _, w := range s.settings.BlockedWords {
		if strings.Contains(lower, w) {
			return FilterVerdict{Action: models.ActionBlock, Reason: "blocked word: " + w}
		}
	}
	for _, t := range s.settings.BlockedTopics {
		if t.IsBlocked && strings.Contains(lower, strings.ToLower(t.Name)) {
			return FilterVerdict{Action: models.ActionBlock, Reason: "blocked topic: " + t.Name}
		}
	}
	return FilterVerdict{Allowed: true}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func (s *FilterService) save() error {
	if err := prefs.Save(s.store, contentFilterKey, s.settings); err != nil {
		return fmt.Errorf("failed to save content filter settings: %w", err)
	}
	return nil
}
