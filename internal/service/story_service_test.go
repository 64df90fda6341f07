package service

import (
	"testing"

	"moxiedash/internal/models"
	"moxiedash/internal/prefs"
)

func newTestStoryService(store prefs.Store) *StoryService {
	return NewStoryService(store, models.DefaultStories(), fixedClock(testNow))
}

func TestStoryDisplayReadDoesNotPopulate(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := newTestStoryService(store)

	if got := svc.FilteredStories(StoryFilter{}); len(got) != 0 {
		t.Errorf("FilteredStories() on empty library = %d items, want 0", len(got))
	}
	if len(svc.Settings().Stories) != 0 {
		t.Errorf("library after display read = %d items, want 0", len(svc.Settings().Stories))
	}
}

func TestStoryToggleFavoritePopulates(t *testing.T) {
	store := prefs.NewMemoryStore()
	defaults := models.DefaultStories()
	svc := NewStoryService(store, defaults, fixedClock(testNow))

	if err := svc.ToggleFavorite(defaults[0].ID); err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}
	stories := svc.Settings().Stories
	if len(stories) != len(defaults) {
		t.Fatalf("library after mutation = %d, want %d", len(stories), len(defaults))
	}
	if !stories[0].IsFavorite {
		t.Error("first story favorite flag = false, want true")
	}
}

func TestQueueReorderSkipsCompletedEntries(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := newTestStoryService(store)

	for _, id := range []string{"story-a", "story-b", "story-c"} {
		if err := svc.AddToQueue(id); err != nil {
			t.Fatalf("AddToQueue(%q) error = %v", id, err)
		}
	}
	queue := svc.Settings().Queue
	itemA, itemB := queue[0], queue[1]

	// Complete the middle entry so the pending view is A, C
	if err := svc.PlayStory(itemB.ID); err != nil {
		t.Fatalf("PlayStory() error = %v", err)
	}

	if err := svc.MoveInQueue(itemA.ID, 1); err != nil {
		t.Fatalf("MoveInQueue() error = %v", err)
	}

	queue = svc.Settings().Queue
	if queue[0].StoryID != "story-c" {
		t.Errorf("queue[0].StoryID = %q, want %q", queue[0].StoryID, "story-c")
	}
	if queue[1].StoryID != "story-b" {
		t.Errorf("queue[1].StoryID = %q, want %q (completed entry must not move)", queue[1].StoryID, "story-b")
	}
	if queue[2].StoryID != "story-a" {
		t.Errorf("queue[2].StoryID = %q, want %q", queue[2].StoryID, "story-a")
	}
}

func TestQueueReorderOutOfBoundsIsNoop(t *testing.T) {
	store := prefs.NewMemoryStore()
	svc := newTestStoryService(store)

	if err := svc.AddToQueue("story-a"); err != nil {
		t.Fatalf("AddToQueue() error = %v", err)
	}
	item := svc.Settings().Queue[0]
	if err := svc.MoveInQueue(item.ID, -1); err != nil {
		t.Fatalf("MoveInQueue() error = %v", err)
	}
	if got := svc.Settings().Queue[0].StoryID; got != "story-a" {
		t.Errorf("queue[0].StoryID after out-of-bounds move = %q, want %q", got, "story-a")
	}
}

func TestQueuedStoriesDropsDanglingReferences(t *testing.T) {
	store := prefs.NewMemoryStore()
	defaults := models.DefaultStories()
	svc := NewStoryService(store, defaults, fixedClock(testNow))

	// Populate the library, then queue a real story and a deleted one
	if err := svc.ToggleFavorite(defaults[0].ID); err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}
	if err := svc.AddToQueue(defaults[0].ID); err != nil {
		t.Fatalf("AddToQueue() error = %v", err)
	}
	if err := svc.AddToQueue("no-such-story"); err != nil {
		t.Fatalf("AddToQueue() error = %v", err)
	}

	queued := svc.QueuedStories()
	if len(queued) != 1 {
		t.Fatalf("QueuedStories() = %d entries, want 1", len(queued))
	}
	if queued[0].Story.ID != defaults[0].ID {
		t.Errorf("queued story id = %q, want %q", queued[0].Story.ID, defaults[0].ID)
	}
	if len(svc.Settings().Queue) != 2 {
		t.Errorf("stored queue = %d entries, want 2 (dangling entry stays stored)", len(svc.Settings().Queue))
	}
}

func TestPlayStoryRecordsRead(t *testing.T) {
	store := prefs.NewMemoryStore()
	defaults := models.DefaultStories()
	svc := NewStoryService(store, defaults, fixedClock(testNow))

	if err := svc.AddToQueue(defaults[1].ID); err != nil {
		t.Fatalf("AddToQueue() error = %v", err)
	}
	item := svc.Settings().Queue[0]
	if err := svc.PlayStory(item.ID); err != nil {
		t.Fatalf("PlayStory() error = %v", err)
	}

	settings := svc.Settings()
	if !settings.Queue[0].IsCompleted {
		t.Error("queue entry IsCompleted = false, want true")
	}
	if settings.Queue[0].CompletedAt == nil {
		t.Error("queue entry CompletedAt = nil, want timestamp")
	}
	for _, story := range settings.Stories {
		if story.ID == defaults[1].ID && story.TimesRead != 1 {
			t.Errorf("TimesRead = %d, want 1", story.TimesRead)
		}
	}

	if err := svc.UndoComplete(item.ID); err != nil {
		t.Fatalf("UndoComplete() error = %v", err)
	}
	if svc.Settings().Queue[0].IsCompleted {
		t.Error("queue entry IsCompleted after undo = true, want false")
	}
}
