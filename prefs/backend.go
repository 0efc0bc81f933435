package prefs

import (
	"errors"
	"sync"
)

// Backend is the persistent keyed storage the store writes widget records to.
// Keys are decimal widget ids; values are serialized records. Save must
// replace the whole value atomically.
type Backend interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
	Remove(key string) error
}

// MemoryBackend keeps records in process memory. Used by tests and by the
// `memory` store option when nothing needs to survive a restart.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Load(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBackend) Save(key, value string) error {
	if key == "" {
		return errors.New("empty record key")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryBackend) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len returns the number of stored records.
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
