// Package session tracks the single authenticated identity for the
// running process.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/store"
)

// sessionKey is the fixed, un-namespaced store key for the active
// session; only one session exists at a time.
const sessionKey = "currentUser"

// Session holds at most one authenticated user, persisted under a
// fixed store key so a later process can resume without re-entering
// credentials. It is constructed and passed explicitly; there is no
// package-level singleton.
type Session struct {
	store store.Store
	user  *model.User
}

// New creates a Session over the given store with no active identity.
func New(st store.Store) *Session {
	return &Session{store: st}
}

// Start sets the active identity and persists it.
func (s *Session) Start(user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := s.store.Set(sessionKey, string(data)); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	s.user = user
	return nil
}

// Restore loads a persisted session, if any. The stored identity is
// trusted without re-validating credentials. Returns nil with no error
// when no session is saved.
func (s *Session) Restore() (*model.User, error) {
	raw, ok, err := s.store.Get(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	s.user = &user
	return s.user, nil
}

// Current returns the active identity, or nil.
func (s *Session) Current() *model.User {
	return s.user
}

// End clears the active identity and removes the persisted key. The
// user's ledger data in the store is untouched; only the in-memory
// view is the caller's to reset.
func (s *Session) End() error {
	if err := s.store.Delete(sessionKey); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.user = nil
	return nil
}
