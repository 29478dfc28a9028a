// Package memory provides an in-memory storage.KV for tests and ephemeral
// runs. The FailWrites hook lets tests exercise persistence-failure paths.
package memory

import (
	"context"
	"sync"

	"github.com/royalbee/storefront/internal/storage"
)

type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites, when set, is returned by every Set and Delete without
	// touching the data. Read under the same lock as the data.
	FailWrites error
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}
	delete(s.data, key)
	return nil
}
