package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// SkillsService manages the social skills tracking screen
type SkillsService struct {
	mu       sync.Mutex
	store    prefs.Store
	now      Clock
	settings models.SocialSkillsSettings
}

// NewSkillsService creates the service and loads any stored settings
func NewSkillsService(store prefs.Store, now Clock) *SkillsService {
	s := &SkillsService{store: store, now: now}
	prefs.Load(store, socialSkillsKey, &s.settings)
	return s
}

// Settings returns a snapshot of the current settings envelope
func (s *SkillsService) Settings() models.SocialSkillsSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SkillsByCategory returns tracked skills in one category, in stored order.
// A nil category returns every tracked skill.
func (s *SkillsService) SkillsByCategory(c *models.SocialSkillCategory) []models.SkillProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.SkillProgress, 0, len(s.settings.SkillProgress))
	for _, sk := range s.settings.SkillProgress {
		if c != nil && sk.Category != *c {
			continue
		}
		result = append(result, sk)
	}
	return result
}

// RecentlyUpdated returns tracked skills sorted by last update, newest
// first, optionally limited
func (s *SkillsService) RecentlyUpdated(limit int) []models.SkillProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := append([]models.SkillProgress(nil), s.settings.SkillProgress...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastUpdatedAt.After(result[j].LastUpdatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// AddSkill starts tracking a skill at the emerging level
func (s *SkillsService) AddSkill(category models.SocialSkillCategory, skillName string) (models.SkillProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sk := models.SkillProgress{
		ID:            uuid.New().String(),
		Category:      category,
		SkillName:     skillName,
		CurrentLevel:  models.LevelEmerging,
		StartedAt:     now,
		LastUpdatedAt: now,
	}
	s.settings.SkillProgress = append(s.settings.SkillProgress, sk)
	return sk, s.save()
}

// SetSkillLevel records a new mastery level for a tracked skill. Goals
// targeting the skill complete automatically when the level reaches their
// target.
func (s *SkillsService) SetSkillLevel(id string, level models.SkillLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.SkillProgress {
		sk := &s.settings.SkillProgress[i]
		if sk.ID != id {
			continue
		}
		sk.CurrentLevel = level
		sk.LastUpdatedAt = s.now()
		for j := range s.settings.Goals {
			g := &s.settings.Goals[j]
			if g.SkillProgressID == id && !g.IsCompleted && level >= g.TargetLevel {
				now := s.now()
				g.IsCompleted = true
				g.CompletedAt = &now
			}
		}
		break
	}
	return s.save()
}

// AddSkillNote attaches a dated note to a tracked skill
func (s *SkillsService) AddSkillNote(skillID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.SkillProgress {
		if s.settings.SkillProgress[i].ID == skillID {
			now := s.now()
			s.settings.SkillProgress[i].Notes = append(s.settings.SkillProgress[i].Notes, models.SkillNote{
				ID:        uuid.New().String(),
				Content:   content,
				CreatedAt: now,
			})
			s.settings.SkillProgress[i].LastUpdatedAt = now
			break
		}
	}
	return s.save()
}

// AddObservation records one observed moment of a skill in use
func (s *SkillsService) AddObservation(skillID string, obs models.SkillObservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.settings.SkillProgress {
		if s.settings.SkillProgress[i].ID == skillID {
			now := s.now()
			if obs.ID == "" {
				obs.ID = uuid.New().String()
			}
			obs.CreatedAt = now
			s.settings.SkillProgress[i].Observations = append(s.settings.SkillProgress[i].Observations, obs)
			s.settings.SkillProgress[i].LastUpdatedAt = now
			break
		}
	}
	return s.save()
}

// DeleteSkill stops tracking a skill and removes every goal that targeted
// it
func (s *SkillsService) DeleteSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	keptSkills := s.settings.SkillProgress[:0]
	for _, sk := range s.settings.SkillProgress {
		if sk.ID != id {
			keptSkills = append(keptSkills, sk)
		}
	}
	s.settings.SkillProgress = keptSkills

	keptGoals := s.settings.Goals[:0]
	for _, g := range s.settings.Goals {
		if g.SkillProgressID != id {
			keptGoals = append(keptGoals, g)
		}
	}
	s.settings.Goals = keptGoals
	return s.save()
}

// AddGoal targets a mastery level for a tracked skill
func (s *SkillsService) AddGoal(skillID string, target models.SkillLevel, targetDate *time.Time) (models.SocialSkillsGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := models.SocialSkillsGoal{
		ID:              uuid.New().String(),
		SkillProgressID: skillID,
		TargetLevel:     target,
		TargetDate:      targetDate,
		CreatedAt:       s.now(),
	}
	s.settings.Goals = append(s.settings.Goals, g)
	return g, s.save()
}

// Goals returns goals filtered by the show-completed toggle, in stored
// order
func (s *SkillsService) Goals() []models.SocialSkillsGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.SocialSkillsGoal, 0, len(s.settings.Goals))
	for _, g := range s.settings.Goals {
		if !s.settings.ShowCompleted && g.IsCompleted {
			continue
		}
		result = append(result, g)
	}
	return result
}

// SetShowCompleted toggles whether completed goals appear in the list
func (s *SkillsService) SetShowCompleted(show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.ShowCompleted = show
	return s.save()
}

// SetFocusCategories replaces the categories the dashboard highlights
func (s *SkillsService) SetFocusCategories(categories []models.SocialSkillCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.FocusCategories = categories
	return s.save()
}

func (s *SkillsService) save() error {
	if err := prefs.Save(s.store, socialSkillsKey, s.settings); err != nil {
		return fmt.Errorf("failed to save social skills settings: %w", err)
	}
	return nil
}
