package service

import (
	"testing"

	"moxiedash/internal/clipboard"
	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func TestStarterSeedsDefaultsOnFirstRun(t *testing.T) {
	store := prefs.NewMemoryStore()
	defaults := models.DefaultStarters()
	svc := NewStarterService(store, defaults, nil)

	if got := len(svc.Starters()); got != len(defaults) {
		t.Errorf("Starters() on first run = %d, want %d", got, len(defaults))
	}
	if _, ok := store.Get("moxie_conversation_starters"); !ok {
		t.Error("first run did not persist the seeded starters")
	}

	// A reload sees the stored set, not a fresh seed
	reloaded := NewStarterService(store, models.DefaultStarters(), nil)
	if got := len(reloaded.Starters()); got != len(defaults) {
		t.Errorf("Starters() after reload = %d, want %d", got, len(defaults))
	}
}

func TestUseStarterCopiesPromptAndCounts(t *testing.T) {
	store := prefs.NewMemoryStore()
	defaults := models.DefaultStarters()
	clip := clipboard.NewMemory()
	svc := NewStarterService(store, defaults, clip)

	target := defaults[0]
	if err := svc.UseStarter(target.ID); err != nil {
		t.Fatalf("UseStarter() error = %v", err)
	}

	if clip.Last() != target.Prompt {
		t.Errorf("clipboard = %q, want %q", clip.Last(), target.Prompt)
	}
	for _, s := range svc.Starters() {
		if s.ID == target.ID && s.TimesUsed != 1 {
			t.Errorf("TimesUsed = %d, want 1", s.TimesUsed)
		}
	}
}

func TestUseStarterUnknownIDLeavesClipboard(t *testing.T) {
	store := prefs.NewMemoryStore()
	clip := clipboard.NewMemory()
	svc := NewStarterService(store, models.DefaultStarters(), clip)

	if err := svc.UseStarter("no-such-starter"); err != nil {
		t.Fatalf("UseStarter() error = %v", err)
	}
	if clip.Last() != "" {
		t.Errorf("clipboard after unknown id = %q, want empty", clip.Last())
	}
}

func TestAddStarterSplitsTags(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewStarterService(store, models.DefaultStarters(), nil)

	starter, err := svc.AddStarter("What was the best part of your day?", models.StarterDaily, models.StarterAgeAll, " evening, reflection ,, family ")
	if err != nil {
		t.Fatalf("AddStarter() error = %v", err)
	}

	want := []string{"evening", "reflection", "family"}
	if len(starter.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", starter.Tags, want)
	}
	for i, tag := range want {
		if starter.Tags[i] != tag {
			t.Errorf("Tags[%d] = %q, want %q", i, starter.Tags[i], tag)
		}
	}
	if !starter.IsCustom {
		t.Error("IsCustom = false, want true")
	}
}

func TestFilteredStartersFavoritesFirstStable(t *testing.T) {
	store := prefs.NewMemoryStore()
	defaults := models.DefaultStarters()
	svc := NewStarterService(store, defaults, nil)

	if err := svc.ToggleFavorite(defaults[5].ID); err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}

	got := svc.FilteredStarters(StarterFilter{})
	if len(got) != len(defaults) {
		t.Fatalf("FilteredStarters() = %d, want %d", len(got), len(defaults))
	}
	if got[0].ID != defaults[5].ID {
		t.Errorf("first result = %q, want favorite %q", got[0].ID, defaults[5].ID)
	}
	// Non-favorites keep their original relative order
	if got[1].ID != defaults[0].ID || got[2].ID != defaults[1].ID {
		t.Error("non-favorite order changed, want stable insertion order")
	}
}
