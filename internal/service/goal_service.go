package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// GoalService manages the learning goals screen
type GoalService struct {
	mu       sync.Mutex
	store    prefs.Store
	now      Clock
	settings models.LearningGoalsSettings
}

// NewGoalService creates the service and loads any stored settings. Goals
// have no built-in default set; an empty collection is the normal first-run
// state.
func NewGoalService(store prefs.Store, now Clock) *GoalService {
	s := &GoalService{store: store, now: now}
	s.settings = models.NewLearningGoalsSettings()
	prefs.Load(store, learningGoalsKey, &s.settings)
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *GoalService) Settings() models.LearningGoalsSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// GoalFilter is the active filter state for the goal list
type GoalFilter struct {
	Subject  *models.LearningSubject
	Priority *models.GoalPriority
	Search   string
}

// FilteredGoals applies the filter and sorts by priority rank descending.
// Completed goals are hidden unless the settings toggle shows them. The
// sort is stable: equal-priority goals keep insertion order.
func (s *GoalService) FilteredGoals(f GoalFilter) []models.ParentLearningGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.ParentLearningGoal, 0, len(s.settings.Goals))
	for _, g := range s.settings.Goals {
		if !s.settings.ShowCompletedGoals && g.IsCompleted {
			continue
		}
		if f.Subject != nil && g.Subject != *f.Subject {
			continue
		}
		if f.Priority != nil && g.Priority != *f.Priority {
			continue
		}
		if !containsFold(g.Title, f.Search) && !containsFold(g.Description, f.Search) {
			continue
		}
		result = append(result, g)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority.Rank() > result[j].Priority.Rank()
	})
	return result
}

// AddGoal appends a new goal, assigning an id and creation timestamps
func (s *GoalService) AddGoal(g models.ParentLearningGoal) (models.ParentLearningGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.Unit == "" {
		g.Unit = "times"
	}
	if g.TargetValue == 0 {
		g.TargetValue = 1
	}
	if g.Timeframe == "" {
		g.Timeframe = s.settings.DefaultTimeframe
	}
	if g.StartDate.IsZero() {
		g.StartDate = now
	}
	g.CreatedAt = now
	s.settings.Goals = append(s.settings.Goals, g)
	return g, s.save()
}

// IncrementProgress advances a goal's counter by the given amount, clamped
// at the target. Reaching the target marks the goal completed and stamps
// the completion time in the same mutation.
func (s *GoalService) IncrementProgress(id string, by int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Goals {
		g := &s.settings.Goals[i]
		if g.ID != id {
			continue
		}
		g.CurrentValue += by
		if g.CurrentValue > g.TargetValue {
			g.CurrentValue = g.TargetValue
		}
		if g.CurrentValue >= g.TargetValue {
			now := s.now()
			g.IsCompleted = true
			g.CompletedAt = &now
		}
		break
	}
	return s.save()
}

// DecrementProgress steps a goal's counter back by one, reopening the goal
// and clearing its completion timestamp
func (s *GoalService) DecrementProgress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Goals {
		g := &s.settings.Goals[i]
		if g.ID != id {
			continue
		}
		if g.CurrentValue > 0 {
			g.CurrentValue--
			g.IsCompleted = false
			g.CompletedAt = nil
		}
		break
	}
	return s.save()
}

// AddNote attaches a dated note to a goal
func (s *GoalService) AddNote(goalID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Goals {
		if s.settings.Goals[i].ID == goalID {
			s.settings.Goals[i].Notes = append(s.settings.Goals[i].Notes, models.GoalNote{
				ID:        uuid.New().String(),
				Content:   content,
				CreatedAt: s.now(),
			})
			break
		}
	}
	return s.save()
}

// ToggleMilestone flips a milestone's completion state within a goal
func (s *GoalService) ToggleMilestone(goalID, milestoneID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.Goals {
		if s.settings.Goals[i].ID != goalID {
			continue
		}
		for j := range s.settings.Goals[i].Milestones {
			m := &s.settings.Goals[i].Milestones[j]
			if m.ID != milestoneID {
				continue
			}
			if m.IsCompleted {
				m.IsCompleted = false
				m.CompletedAt = nil
			} else {
				now := s.now()
				m.IsCompleted = true
				m.CompletedAt = &now
			}
			break
		}
		break
	}
	return s.save()
}

// DeleteGoal removes a goal by id
func (s *GoalService) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.settings.Goals[:0]
	for _, g := range s.settings.Goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.settings.Goals = kept
	return s.save()
}

// SetShowCompletedGoals toggles whether completed goals appear in the list
func (s *GoalService) SetShowCompletedGoals(show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ShowCompletedGoals = show
	return s.save()
}

func (s *GoalService) save() error {
	if err := prefs.Save(s.store, learningGoalsKey, s.settings); err != nil {
		return fmt.Errorf("failed to save learning goal settings: %w", err)
	}
	return nil
}
