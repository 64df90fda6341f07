package service

import (
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func TestRewardSeedsDefaultBadges(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewRewardService(store, fixedClock(testNow))

	state := svc.State()
	if len(state.Achievements) != 17 {
		t.Fatalf("seeded achievements = %d, want 17", len(state.Achievements))
	}
	if got := svc.TotalPoints(); got != 7*models.PointsPerAchievement {
		t.Errorf("TotalPoints() = %d, want %d", got, 7*models.PointsPerAchievement)
	}
}

func TestEarnedAndInProgressSplit(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewRewardService(store, fixedClock(testNow))

	earned := svc.EarnedAchievements()
	inProgress := svc.InProgressAchievements()
	if len(earned)+len(inProgress) != 17 {
		t.Fatalf("earned %d + in progress %d != 17", len(earned), len(inProgress))
	}
	for i := 1; i < len(earned); i++ {
		if earned[i].EarnedDate.After(*earned[i-1].EarnedDate) {
			t.Errorf("earned order wrong at %d", i)
		}
	}
	for i := 1; i < len(inProgress); i++ {
		if inProgress[i].ProgressPercentage() > inProgress[i-1].ProgressPercentage() {
			t.Errorf("in-progress order wrong at %d", i)
		}
	}
}

func TestRecordProgressEarnsBadge(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewRewardService(store, fixedClock(testNow))

	var target models.RewardAchievement
	for _, a := range svc.State().Achievements {
		if a.Name == "Week Warrior" {
			target = a
		}
	}
	if target.ID == "" {
		t.Fatal("Week Warrior badge not found")
	}

	// Progress 5 of 7; +5 clamps to 7 and earns the badge
	if err := svc.RecordProgress(target.ID, 5); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}
	for _, a := range svc.State().Achievements {
		if a.ID != target.ID {
			continue
		}
		if a.Progress != 7 {
			t.Errorf("Progress = %d, want 7 (clamped)", a.Progress)
		}
		if !a.IsEarned() {
			t.Error("IsEarned() = false, want true")
		}
		if a.EarnedDate == nil || !a.EarnedDate.Equal(testNow) {
			t.Errorf("EarnedDate = %v, want %v", a.EarnedDate, testNow)
		}
	}

	reloaded := NewRewardService(store, fixedClock(testNow))
	if got := reloaded.TotalPoints(); got != 8*models.PointsPerAchievement {
		t.Errorf("TotalPoints() after reload = %d, want %d", got, 8*models.PointsPerAchievement)
	}
}
