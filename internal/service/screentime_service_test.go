package service

import (
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func TestScreenTimeSeedsSampleOnFirstRun(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewScreenTimeService(store, fixedClock(testNow))

	if got := len(svc.Data().Sessions); got == 0 {
		t.Fatal("first run seeded no sessions, want sample data")
	}
	if _, ok := store.Get("moxie_screen_time_data"); !ok {
		t.Error("first run did not persist the sample data")
	}

	// A reload sees the stored history, not a fresh sample
	before := len(svc.Data().Sessions)
	reloaded := NewScreenTimeService(store, fixedClock(testNow))
	if got := len(reloaded.Data().Sessions); got != before {
		t.Errorf("sessions after reload = %d, want %d", got, before)
	}
}

func TestRecordSessionExtendsTotals(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewScreenTimeService(store, fixedClock(testNow))

	before := svc.TodayTotal()
	session, err := svc.RecordSession(models.FeatureStory, 600, "Moxie")
	if err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}
	if session.ID == "" {
		t.Error("session id not assigned")
	}
	if got := svc.TodayTotal(); got != before+600 {
		t.Errorf("TodayTotal() = %v, want %v", got, before+600)
	}

	byFeature := svc.TimeByFeature()
	if byFeature[models.FeatureStory] < 600 {
		t.Errorf("TimeByFeature()[story] = %v, want at least 600", byFeature[models.FeatureStory])
	}
}

func TestDailyTotalsMostRecentFirst(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewScreenTimeService(store, fixedClock(testNow))

	totals := svc.DailyTotals(7)
	if len(totals) != 7 {
		t.Fatalf("DailyTotals(7) = %d entries, want 7", len(totals))
	}
	for i := 1; i < len(totals); i++ {
		if !totals[i].Date.Before(totals[i-1].Date) {
			t.Errorf("DailyTotals order wrong at %d: %v not before %v", i, totals[i].Date, totals[i-1].Date)
		}
	}
}
