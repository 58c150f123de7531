package prefstore

import (
	"context"
	"sync"
)

// MemoryStore is a process-local PreferenceStore for tests. Production
// wiring uses RedisStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) SaveDisplayID(_ context.Context, deviceKey, displayID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[deviceKey] = displayID
	return nil
}

func (s *MemoryStore) ClearDisplayID(_ context.Context, deviceKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, deviceKey)
	return nil
}

func (s *MemoryStore) LoadDisplayID(_ context.Context, deviceKey string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[deviceKey]
	return value, ok, nil
}
