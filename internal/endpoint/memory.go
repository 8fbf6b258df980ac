package endpoint

import (
	"context"
	"sync"
)

// MemoryStore keeps the endpoint for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	value string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return orDefault(m.value), nil
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = Normalize(value)
	return nil
}
