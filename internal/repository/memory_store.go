package repository

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory KeyValueStoreInterface. It is safe for
// concurrent use and is the default for tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore creates a new, empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

// GetItem retrieves a value by key
func (s *MemoryStore) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores a value under key
func (s *MemoryStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
	return nil
}

// RemoveItem deletes key if present
func (s *MemoryStore) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// Clear deletes every key
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.items = make(map[string]string)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored keys
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
