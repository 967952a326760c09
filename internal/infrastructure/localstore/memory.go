package localstore

import (
	"encoding/json"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and ephemeral runs. Values
// round-trip through JSON so it behaves exactly like FileStore minus the
// filesystem.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Read decodes the value stored under key into out.
func (s *MemoryStore) Read(key string, out any) error {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return ErrKeyNotFound
	}
	return json.Unmarshal(data, out)
}

// Write serializes value and replaces the entry under key.
func (s *MemoryStore) Write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return nil
}
