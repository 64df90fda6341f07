package service

import (
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func TestIncrementProgressClampsAndCompletes(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewGoalService(store, fixedClock(testNow))

	g, err := svc.AddGoal(models.ParentLearningGoal{
		Title:        "Read together",
		Subject:      models.SubjectReading,
		Priority:     models.PriorityHigh,
		TargetValue:  5,
		CurrentValue: 4,
	})
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}

	if err := svc.IncrementProgress(g.ID, 2); err != nil {
		t.Fatalf("IncrementProgress() error = %v", err)
	}

	goals := svc.Settings().Goals
	if goals[0].CurrentValue != 5 {
		t.Errorf("CurrentValue = %d, want 5 (clamped)", goals[0].CurrentValue)
	}
	if !goals[0].IsCompleted {
		t.Error("IsCompleted = false, want true")
	}
	if goals[0].CompletedAt == nil {
		t.Fatal("CompletedAt = nil, want timestamp")
	}
	if !goals[0].CompletedAt.Equal(testNow) {
		t.Errorf("CompletedAt = %v, want %v", goals[0].CompletedAt, testNow)
	}
}

func TestDecrementProgressReopensGoal(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewGoalService(store, fixedClock(testNow))

	g, err := svc.AddGoal(models.ParentLearningGoal{
		Title:        "Practice counting",
		Subject:      models.SubjectMath,
		Priority:     models.PriorityMedium,
		TargetValue:  3,
		CurrentValue: 3,
	})
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if err := svc.IncrementProgress(g.ID, 0); err != nil {
		t.Fatalf("IncrementProgress() error = %v", err)
	}
	if !svc.Settings().Goals[0].IsCompleted {
		t.Fatal("goal should be completed before decrement")
	}

	if err := svc.DecrementProgress(g.ID); err != nil {
		t.Fatalf("DecrementProgress() error = %v", err)
	}
	goal := svc.Settings().Goals[0]
	if goal.CurrentValue != 2 {
		t.Errorf("CurrentValue = %d, want 2", goal.CurrentValue)
	}
	if goal.IsCompleted {
		t.Error("IsCompleted after decrement = true, want false")
	}
	if goal.CompletedAt != nil {
		t.Error("CompletedAt after decrement != nil, want nil")
	}
}

func TestFilteredGoalsSortsByPriorityRankStable(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewGoalService(store, fixedClock(testNow))

	titles := []struct {
		title    string
		priority models.GoalPriority
	}{
		{"low one", models.PriorityLow},
		{"high one", models.PriorityHigh},
		{"medium one", models.PriorityMedium},
		{"high two", models.PriorityHigh},
		{"medium two", models.PriorityMedium},
	}
	for _, tt := range titles {
		if _, err := svc.AddGoal(models.ParentLearningGoal{
			Title:       tt.title,
			Subject:     models.SubjectReading,
			Priority:    tt.priority,
			TargetValue: 1,
		}); err != nil {
			t.Fatalf("AddGoal(%q) error = %v", tt.title, err)
		}
	}

	got := svc.FilteredGoals(GoalFilter{})
	want := []string{"high one", "high two", "medium one", "medium two", "low one"}
	if len(got) != len(want) {
		t.Fatalf("FilteredGoals() = %d goals, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("FilteredGoals()[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestFilteredGoalsHidesCompleted(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewGoalService(store, fixedClock(testNow))

	g, err := svc.AddGoal(models.ParentLearningGoal{
		Title:       "Done already",
		Subject:     models.SubjectScience,
		Priority:    models.PriorityLow,
		TargetValue: 1,
	})
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if _, err := svc.AddGoal(models.ParentLearningGoal{
		Title:       "Still open",
		Subject:     models.SubjectScience,
		Priority:    models.PriorityLow,
		TargetValue: 2,
	}); err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if err := svc.IncrementProgress(g.ID, 1); err != nil {
		t.Fatalf("IncrementProgress() error = %v", err)
	}

	got := svc.FilteredGoals(GoalFilter{})
	if len(got) != 1 || got[0].Title != "Still open" {
		t.Errorf("FilteredGoals() with completed hidden = %v, want only %q", got, "Still open")
	}

	if err := svc.SetShowCompletedGoals(true); err != nil {
		t.Fatalf("SetShowCompletedGoals() error = %v", err)
	}
	if got := svc.FilteredGoals(GoalFilter{}); len(got) != 2 {
		t.Errorf("FilteredGoals() with completed shown = %d goals, want 2", len(got))
	}
}

func TestGoalRoundTrip(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewGoalService(store, fixedClock(testNow))

	g, err := svc.AddGoal(models.ParentLearningGoal{
		Title:       "Learn shapes",
		Subject:     models.SubjectMath,
		Priority:    models.PriorityHigh,
		TargetValue: 4,
	})
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if err := svc.AddNote(g.ID, "started with circles"); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}

	reloaded := NewGoalService(store, fixedClock(testNow))
	goals := reloaded.Settings().Goals
	if len(goals) != 1 {
		t.Fatalf("goals after reload = %d, want 1", len(goals))
	}
	if goals[0].Title != "Learn shapes" {
		t.Errorf("Title after reload = %q, want %q", goals[0].Title, "Learn shapes")
	}
	if len(goals[0].Notes) != 1 || goals[0].Notes[0].Content != "started with circles" {
		t.Errorf("Notes after reload = %v, want one note", goals[0].Notes)
	}
}
