// Package clipboard defines the copy sink used when a parent copies a
// conversation-starter prompt. The operation is fire and forget.
package clipboard

import "sync"

// Clipboard receives plain text on a copy action
type Clipboard interface {
	Copy(text string)
}

// Memory is an in-process clipboard holding the most recent copy. It backs
// tests and deployments with no system clipboard.
type Memory struct {
	mu   sync.Mutex
	last string
}

// NewMemory creates an empty in-process clipboard
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Copy(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = text
}

// Last returns the most recently copied text
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
