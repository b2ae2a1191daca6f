// Package memstore provides an in-memory implementation of store.Store,
// used for tests and the "memory" backend.
package memstore

import (
	"sync"

	"github.com/pennywise-dev/pennywise/internal/store"
)

// Ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

// Store keeps all values in a map. Contents vanish with the process.
type Store struct {
	mu sync.Mutex
	m  map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{m: make(map[string]string)}
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Set writes the value for key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Delete removes key.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
