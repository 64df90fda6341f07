package service

import (
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func TestFilterSeedsTopicsOnFirstRun(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewFilterService(store)

	topics := svc.Settings().BlockedTopics
	if len(topics) != 19 {
		t.Fatalf("seeded topics = %d, want 19", len(topics))
	}
	if _, ok := store.Get("moxie_content_filter_settings"); !ok {
		t.Error("first run did not persist the seeded topics")
	}

	// Toggles survive a reload without reseeding
	if err := svc.ToggleTopic(topics[0].ID); err != nil {
		t.Fatalf("ToggleTopic() error = %v", err)
	}
	reloaded := NewFilterService(store)
	got := reloaded.Settings().BlockedTopics
	if len(got) != 19 {
		t.Fatalf("topics after reload = %d, want 19", len(got))
	}
	if got[0].IsBlocked == topics[0].IsBlocked {
		t.Error("topic toggle lost on reload")
	}
}

func TestAddBlockedWordNormalizes(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewFilterService(store)

	for _, word := range []string{"  Scary Movie ", "scary movie", "", "zombie"} {
		if err := svc.AddBlockedWord(word); err != nil {
			t.Fatalf("AddBlockedWord(%q) error = %v", word, err)
		}
	}

	words := svc.BlockedWords()
	want := []string{"scary movie", "zombie"}
	if len(words) != len(want) {
		t.Fatalf("BlockedWords() = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("BlockedWords()[%d] = %q, want %q", i, words[i], want[i])
		}
	}

	if err := svc.RemoveBlockedWord("ZOMBIE"); err != nil {
		t.Fatalf("RemoveBlockedWord() error = %v", err)
	}
	if got := svc.BlockedWords(); len(got) != 1 {
		t.Errorf("BlockedWords() after remove = %v, want one entry", got)
	}
}

func TestAddExceptionDeduplicates(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewFilterService(store)

	if err := svc.AddException("Halloween"); err != nil {
		t.Fatalf("AddException() error = %v", err)
	}
	if err := svc.AddException(" halloween "); err != nil {
		t.Fatalf("AddException() error = %v", err)
	}
	if got := svc.Settings().AllowedExceptions; len(got) != 1 || got[0] != "halloween" {
		t.Errorf("AllowedExceptions = %v, want [halloween]", got)
	}
}

func TestCustomRuleLifecycle(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewFilterService(store)

	rule, err := svc.AddCustomRule("haunted *", models.ActionRedirect)
	if err != nil {
		t.Fatalf("AddCustomRule() error = %v", err)
	}
	if !rule.IsEnabled {
		t.Error("new rule IsEnabled = false, want true")
	}

	if err := svc.ToggleCustomRule(rule.ID); err != nil {
		t.Fatalf("ToggleCustomRule() error = %v", err)
	}
	if svc.Settings().CustomRules[0].IsEnabled {
		t.Error("rule IsEnabled after toggle = true, want false")
	}

	if err := svc.DeleteCustomRule(rule.ID); err != nil {
		t.Fatalf("DeleteCustomRule() error = %v", err)
	}
	if got := len(svc.Settings().CustomRules); got != 0 {
		t.Errorf("rules after delete = %d, want 0", got)
	}
}

func TestCheckText(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewFilterService(store)

	if err := svc.AddBlockedWord("zombie"); err != nil {
		t.Fatalf("AddBlockedWord() error = %v", err)
	}
	if err := svc.AddException("zombie dance"); err != nil {
		t.Fatalf("AddException() error = %v", err)
	}
	if _, err := svc.AddCustomRule("haunted house", models.ActionWarn); err != nil {
		t.Fatalf("AddCustomRule() error = %v", err)
	}

	tests := []struct {
		name        string
		text        string
		wantAllowed bool
		wantAction  models.FilterAction
	}{
		{"plain text passes", "tell me about dinosaurs", true, ""},
		{"blocked word", "a Zombie story", false, models.ActionBlock},
		{"exception wins over blocked word", "do the zombie dance", true, ""},
		{"blocked topic", "can we talk about weapons", false, models.ActionBlock},
		{"warn rule allows with action", "the haunted house game", true, models.ActionWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.CheckText(tt.text)
			if got.Allowed != tt.wantAllowed {
				t.Errorf("CheckText(%q).Allowed = %v, want %v", tt.text, got.Allowed, tt.wantAllowed)
			}
			if got.Action != tt.wantAction {
				t.Errorf("CheckText(%q).Action = %q, want %q", tt.text, got.Action, tt.wantAction)
			}
		})
	}
}

func TestTopicsByCategoryGroups(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewFilterService(store)

	groups := svc.TopicsByCategory()
	if len(groups["Violence"]) != 4 {
		t.Errorf("Violence topics = %d, want 4", len(groups["Violence"]))
	}
	if len(groups["Safety"]) != 3 {
		t.Errorf("Safety topics = %d, want 3", len(groups["Safety"]))
	}
}
