package store

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore keeps serialized entries in-process. It backs tests and
// single-instance deployments that run without Redis.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string][]byte)}
}

func (m *memoryStore) Load(_ context.Context, key string, value any) (bool, error) {

	m.mu.RLock()
	data, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, err
	}

	return true, nil
}

func (m *memoryStore) Save(_ context.Context, key string, value any) error {

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {

	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}
