package service

import (
	"testing"
	"time"

	"moxiedash/internal/prefs"
)

func TestFirstProfileBecomesActive(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewProfileService(store, fixedClock(testNow))

	birth := time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)
	p, err := svc.AddProfile("Riley", "", birth)
	if err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	if !p.IsActive {
		t.Error("first profile IsActive = false, want true")
	}
	if p.Nickname != "Riley" {
		t.Errorf("Nickname = %q, want fallback to name", p.Nickname)
	}

	active, ok := svc.ActiveProfile()
	if !ok || active.ID != p.ID {
		t.Errorf("ActiveProfile() = %v, %v; want first profile", active, ok)
	}
}

func TestActivateProfileSwitchesFlags(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewProfileService(store, fixedClock(testNow))

	birth := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.AddProfile("Riley", "", birth); err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	second, err := svc.AddProfile("Sam", "Sammy", birth)
	if err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	if second.IsActive {
		t.Error("second profile IsActive on add = true, want false")
	}

	if err := svc.ActivateProfile(second.ID); err != nil {
		t.Fatalf("ActivateProfile() error = %v", err)
	}
	for _, p := range svc.Profiles() {
		want := p.ID == second.ID
		if p.IsActive != want {
			t.Errorf("profile %q IsActive = %v, want %v", p.Name, p.IsActive, want)
		}
	}

	// The active id survives a reload
	reloaded := NewProfileService(store, fixedClock(testNow))
	active, ok := reloaded.ActiveProfile()
	if !ok || active.ID != second.ID {
		t.Errorf("ActiveProfile() after reload = %v, %v; want %q", active, ok, second.ID)
	}
}

func TestDeleteActiveProfileClearsActive(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewProfileService(store, fixedClock(testNow))

	birth := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.AddProfile("Riley", "", birth)
	if err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	if err := svc.DeleteProfile(p.ID); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if len(svc.Profiles()) != 0 {
		t.Errorf("Profiles() after delete = %d, want 0", len(svc.Profiles()))
	}
	if _, ok := svc.ActiveProfile(); ok {
		t.Error("ActiveProfile() after deleting active = true, want false")
	}
}

func TestRecordActivity(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewProfileService(store, fixedClock(testNow))

	birth := time.Date(2020, 5, 5, 0, 0, 0, 0, time.UTC)
	p, err := svc.AddProfile("Riley", "", birth)
	if err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	if err := svc.RecordActivity(p.ID, 3, 1800); err != nil {
		t.Fatalf("RecordActivity() error = %v", err)
	}

	got := svc.Profiles()[0]
	if got.TotalConversations != 3 {
		t.Errorf("TotalConversations = %d, want 3", got.TotalConversations)
	}
	if got.TotalScreenTime != 1800 {
		t.Errorf("TotalScreenTime = %v, want 1800", got.TotalScreenTime)
	}
	if got.LastActiveAt == nil || !got.LastActiveAt.Equal(testNow) {
		t.Errorf("LastActiveAt = %v, want %v", got.LastActiveAt, testNow)
	}
}
