// Package prefs provides the string-keyed JSON document store that backs
// every dashboard feature's settings. Each feature owns one key and reads
// and writes its whole settings document as a single blob.
package prefs

import (
	"encoding/json"
	"sync"

	"moxiedash/internal/database"
)

// Store is a durable key/value slot for JSON documents
type Store interface {
	// Get returns the raw document for key, or false when nothing is stored
	Get(key string) ([]byte, bool)

	// Set stores the raw document under key, replacing any previous value
	Set(key string, value []byte) error

	// Delete removes the document under key; missing keys are ignored
	Delete(key string) error
}

// Load decodes the document stored under key into v. A missing document or
// one that fails to decode leaves v untouched and returns false; both cases
// mean "use defaults" and are deliberately silent.
func Load(s Store, key string, v interface{}) bool {
	data, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// Save serializes v and writes it under key, unconditionally overwriting
// any previous document
func Save(s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, data)
}

// DatabaseStore persists documents in the preferences table
type DatabaseStore struct {
	db *database.DB
}

// NewDatabaseStore creates a store backed by the given database
func NewDatabaseStore(db *database.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) Get(key string) ([]byte, bool) {
	data, ok, err := s.db.GetPreference(key)
	if err != nil {
		// Read failures degrade to "no stored value"
		return nil, false
	}
	return data, ok
}

func (s *DatabaseStore) Set(key string, value []byte) error {
	return s.db.SetPreference(key, value)
}

func (s *DatabaseStore) Delete(key string) error {
	return s.db.DeletePreference(key)
}

// MemoryStore is an in-memory Store used by tests and previews
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	return data, ok
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	s.data[key] = copied
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
