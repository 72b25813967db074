package memory

import (
	"context"
	"sync"

	"athleticsplatform/internal/domain"
)

// Store is an in-memory SlotStore for tests and embedded use. It mirrors the
// single-slot-per-name layout of the durable backends.
type Store struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewStore returns an empty in-memory slot store.
func NewStore() *Store {
	return &Store{slots: make(map[string]string)}
}

var _ domain.SlotStore = (*Store)(nil)

func (s *Store) Get(ctx context.Context, name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.slots[name]
	return value, ok, nil
}

func (s *Store) Set(ctx context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[name] = value
	return nil
}

func (s *Store) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, name)
	return nil
}
