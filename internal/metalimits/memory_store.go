package metalimits

import (
	"context"
	"sync"
)

// implements KVStore with in-process storage. suitable for tests and
// single-instance deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[key], nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
