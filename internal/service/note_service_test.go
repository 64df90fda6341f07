package service

import (
	"testing"
	"time"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func addNoteAt(t *testing.T, store prefs.Store, at time.Time, n models.ParentalNote) models.ParentalNote {
	t.Helper()
	svc := NewNoteService(store, fixedClock(at))
	added, err := svc.AddNote(n)
	if err != nil {
		t.Fatalf("AddNote(%q) error = %v", n.Title, err)
	}
	return added
}

func TestFilteredNotesPinnedFirstThenNewest(t *testing.T) {
	store := prefs.NewMemoryStore()

	addNoteAt(t, store, testNow.Add(-3*time.Hour), models.ParentalNote{Title: "oldest", Category: models.NoteMemory})
	middle := addNoteAt(t, store, testNow.Add(-2*time.Hour), models.ParentalNote{Title: "middle", Category: models.NoteMemory})
	addNoteAt(t, store, testNow.Add(-time.Hour), models.ParentalNote{Title: "newest", Category: models.NoteMemory})

	svc := NewNoteService(store, fixedClock(testNow))
	if err := svc.TogglePin(middle.ID); err != nil {
		t.Fatalf("TogglePin() error = %v", err)
	}

	got := svc.FilteredNotes(NoteFilter{})
	want := []string{"middle", "newest", "oldest"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("FilteredNotes()[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}

	if err := svc.SetSortNewestFirst(false); err != nil {
		t.Fatalf("SetSortNewestFirst() error = %v", err)
	}
	got = svc.FilteredNotes(NoteFilter{})
	want = []string{"middle", "oldest", "newest"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("oldest-first FilteredNotes()[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestFilteredNotesHidesPrivate(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewNoteService(store, fixedClock(testNow))

	if _, err := svc.AddNote(models.ParentalNote{Title: "public", Category: models.NoteBehavior}); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}
	if _, err := svc.AddNote(models.ParentalNote{Title: "private", Category: models.NoteConcern, IsPrivate: true}); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}

	if got := svc.FilteredNotes(NoteFilter{}); len(got) != 2 {
		t.Errorf("FilteredNotes() with private shown = %d, want 2", len(got))
	}
	if err := svc.SetShowPrivateNotes(false); err != nil {
		t.Fatalf("SetShowPrivateNotes() error = %v", err)
	}
	got := svc.FilteredNotes(NoteFilter{})
	if len(got) != 1 || got[0].Title != "public" {
		t.Errorf("FilteredNotes() with private hidden = %v, want only public", got)
	}
}

func TestNoteTagsMergeAndFilter(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := NewNoteService(store, fixedClock(testNow))

	if _, err := svc.AddNote(models.ParentalNote{Title: "swim class", Category: models.NoteMilestone, Tags: []string{"swimming", "sports"}}); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}
	if _, err := svc.AddNote(models.ParentalNote{Title: "pool party", Category: models.NoteMemory, Tags: []string{"swimming"}}); err != nil {
		t.Fatalf("AddNote() error = %v", err)
	}

	tags := svc.AllTags()
	if len(tags) != 2 {
		t.Errorf("AllTags() = %v, want 2 distinct tags", tags)
	}
	if got := svc.FilteredNotes(NoteFilter{Tag: "sports"}); len(got) != 1 || got[0].Title != "swim class" {
		t.Errorf("FilteredNotes(tag=sports) = %v, want only swim class", got)
	}
}

func TestUpdateNotePreservesCreatedAt(t *testing.T) {
	store := prefs.NewMemoryStore()
	created := testNow.Add(-24 * time.Hour)
	note := addNoteAt(t, store, created, models.ParentalNote{Title: "first words", Category: models.NoteMilestone})

	svc := NewNoteService(store, fixedClock(testNow))
	note.Content = "said 'robot' today"
	if err := svc.UpdateNote(note); err != nil {
		t.Fatalf("UpdateNote() error = %v", err)
	}

	got := svc.Settings().Notes[0]
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want preserved %v", got.CreatedAt, created)
	}
	if !got.UpdatedAt.Equal(testNow) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, testNow)
	}
	if got.Content != "said 'robot' today" {
		t.Errorf("Content = %q, want updated text", got.Content)
	}
}
