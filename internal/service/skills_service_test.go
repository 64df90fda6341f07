package service

import (
	"testing"
	"time"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func TestSetSkillLevelCompletesGoals(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewSkillsService(store, fixedClock(testNow))

	sk, err := svc.AddSkill(models.SkillEmpathy, "Helping others")
	if err != nil {
		t.Fatalf("AddSkill() error = %v", err)
	}
	if sk.CurrentLevel != models.LevelEmerging {
		t.Errorf("new skill level = %v, want emerging", sk.CurrentLevel)
	}

	goal, err := svc.AddGoal(sk.ID, models.LevelPracticing, nil)
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}

	if err := svc.SetSkillLevel(sk.ID, models.LevelDeveloping); err != nil {
		t.Fatalf("SetSkillLevel() error = %v", err)
	}
	if svc.Settings().Goals[0].IsCompleted {
		t.Error("goal completed below target level")
	}

	if err := svc.SetSkillLevel(sk.ID, models.LevelPracticing); err != nil {
		t.Fatalf("SetSkillLevel() error = %v", err)
	}
	got := svc.Settings().Goals[0]
	if !got.IsCompleted {
		t.Error("goal IsCompleted = false, want true at target level")
	}
	if got.CompletedAt == nil {
		t.Error("goal CompletedAt = nil, want timestamp")
	}
	if got.ID != goal.ID {
		t.Errorf("goal id = %q, want %q", got.ID, goal.ID)
	}
}

func TestDeleteSkillRemovesItsGoals(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewSkillsService(store, fixedClock(testNow))

	first, err := svc.AddSkill(models.SkillManners, "Saying please/thank you")
	if err != nil {
		t.Fatalf("AddSkill() error = %v", err)
	}
	second, err := svc.AddSkill(models.SkillConfidence, "Trying new things")
	if err != nil {
		t.Fatalf("AddSkill() error = %v", err)
	}
	if _, err := svc.AddGoal(first.ID, models.LevelMastered, nil); err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if _, err := svc.AddGoal(second.ID, models.LevelMastered, nil); err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}

	if err := svc.DeleteSkill(first.ID); err != nil {
		t.Fatalf("DeleteSkill() error = %v", err)
	}

	settings := svc.Settings()
	if len(settings.SkillProgress) != 1 || settings.SkillProgress[0].ID != second.ID {
		t.Errorf("skills after delete = %+v, want only second", settings.SkillProgress)
	}
	if len(settings.Goals) != 1 || settings.Goals[0].SkillProgressID != second.ID {
		t.Errorf("goals after delete = %+v, want only second's goal", settings.Goals)
	}
}

func TestAddObservationTouchesLastUpdated(t *testing.T) {
	store := prefs.NewMemoryStore()
	earlier := testNow.Add(-48 * time.Hour)
	svc := NewSkillsService(store, fixedClock(earlier))

	sk, err := svc.AddSkill(models.SkillCommunication, "Active listening")
	if err != nil {
		t.Fatalf("AddSkill() error = %v", err)
	}

	later := NewSkillsService(store, fixedClock(testNow))
	if err := later.AddObservation(sk.ID, models.SkillObservation{
		Description: "Waited for a friend to finish talking",
		WasPositive: true,
	}); err != nil {
		t.Fatalf("AddObservation() error = %v", err)
	}

	got := later.Settings().SkillProgress[0]
	if len(got.Observations) != 1 {
		t.Fatalf("observations = %d, want 1", len(got.Observations))
	}
	if !got.LastUpdatedAt.Equal(testNow) {
		t.Errorf("LastUpdatedAt = %v, want %v", got.LastUpdatedAt, testNow)
	}

	recent := later.RecentlyUpdated(1)
	if len(recent) != 1 || recent[0].ID != sk.ID {
		t.Errorf("RecentlyUpdated(1) = %+v, want the observed skill", recent)
	}
}
