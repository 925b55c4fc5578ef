package kvstore

import (
	"context"
	"sync"

	"github.com/KirkDiggler/op-character-creator/internal/errors"
)

// MemoryStore keeps records in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// Get returns the value stored under key
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return "", errors.NotFoundf("no record stored under %s", key)
	}
	return value, nil
}

// Set stores value under key
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

// Delete removes key
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
