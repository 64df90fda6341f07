package prefs

import "testing"

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoadMissingKey(t *testing.T) {
	store := NewMemoryStore()

	v := sample{Name: "default", Count: 7}
	if Load(store, "nothing-here", &v) {
		t.Error("Load() = true for missing key, want false")
	}
	if v.Name != "default" || v.Count != 7 {
		t.Errorf("Load() modified value on miss: %+v", v)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Set("broken", []byte("{not json")); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	v := sample{Name: "default"}
	if Load(store, "broken", &v) {
		t.Error("Load() = true for malformed document, want false")
	}
	if v.Name != "default" {
		t.Errorf("Load() modified value on decode failure: %+v", v)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	saved := sample{Name: "bedtime", Count: 3}
	if err := Save(store, "roundtrip", saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	var loaded sample
	if !Load(store, "roundtrip", &loaded) {
		t.Fatal("Load() = false after Save()")
	}
	if loaded != saved {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, saved)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := NewMemoryStore()

	if err := Save(store, "slot", sample{Name: "first"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := Save(store, "slot", sample{Name: "second"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	var loaded sample
	if !Load(store, "slot", &loaded) {
		t.Fatal("Load() = false after Save()")
	}
	if loaded.Name != "second" {
		t.Errorf("Load() = %+v, want the most recent save", loaded)
	}
}

func TestDelete(t *testing.T) {
	store := NewMemoryStore()

	if err := Save(store, "slot", sample{Name: "gone"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Delete("slot"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	var loaded sample
	if Load(store, "slot", &loaded) {
		t.Error("Load() = true after Delete(), want false")
	}

	// Deleting a missing key is not an error
	if err := store.Delete("never-existed"); err != nil {
		t.Errorf("Delete() on missing key error: %v", err)
	}
}
