package service

import (
	"fmt"
	"sort"
	"sync"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

// RewardService manages the achievements screen
type RewardService struct {
	mu    sync.Mutex
	store prefs.Store
	now   Clock
	state models.RewardsState
}

// NewRewardService creates the service, loading stored achievements or
// seeding and persisting the built-in badge set on first run
func NewRewardService(store prefs.Store, now Clock) *RewardService {
	s := &RewardService{store: store, now: now}
	if !prefs.Load(store, rewardsKey, &s.state) {
		s.state.Achievements = models.DefaultAchievements(now())
		s.save()
	}
	return s
}

// State returns a snapshot of the rewards state
func (s *RewardService) State() models.RewardsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.RewardsState{
		Achievements: append([]models.RewardAchievement(nil), s.state.Achievements...),
	}
}

// TotalPoints returns the child's current point total
func (s *RewardService) TotalPoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalPoints()
}

// EarnedAchievements returns earned badges, most recently earned first
func (s *RewardService) EarnedAchievements() []models.RewardAchievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.RewardAchievement, 0, len(s.state.Achievements))
	for _, a := range s.state.Achievements {
		if a.IsEarned() {
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EarnedDate.After(*result[j].EarnedDate)
	})
	return result
}

// InProgressAchievements returns unearned badges, closest to completion
// first
func (s *RewardService) InProgressAchievements() []models.RewardAchievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.RewardAchievement, 0, len(s.state.Achievements))
	for _, a := range s.state.Achievements {
		if !a.IsEarned() {
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ProgressPercentage() > result[j].ProgressPercentage()
	})
	return result
}

// AchievementsByCategory returns the badges in one category, in stored
// order
func (s *RewardService) AchievementsByCategory(c models.RewardCategory) []models.RewardAchievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.RewardAchievement, 0, len(s.state.Achievements))
	for _, a := range s.state.Achievements {
		if a.Category == c {
			result = append(result, a)
		}
	}
	return result
}

// RecordProgress advances an achievement's counter, clamped at its
// requirement. Reaching the requirement earns the badge and stamps the
// earned date.
func (s *RewardService) RecordProgress(id string, by int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Achievements {
		a := &s.state.Achievements[i]
		if a.ID != id {
			continue
		}
		a.Progress += by
		if a.Progress > a.Requirement {
			a.Progress = a.Requirement
		}
		if a.Progress >= a.Requirement && a.EarnedDate == nil {
			now := s.now()
			a.EarnedDate = &now
		}
		break
	}
	return s.save()
}

func (s *RewardService) save() error {
	if err := prefs.Save(s.store, rewardsKey, s.state); err != nil {
		return fmt.Errorf("failed to save rewards state: %w", err)
	}
	return nil
}
