package session

import (
	"sync"

	"github.com/cr7ritesh/adventure-engine/core"
)

// InMemoryStore is a volatile SessionStore implementation keeping sessions in
// a process-local map. It is safe for concurrent access. Sessions vanish on
// process restart; there is no size bound, eviction or expiry. Each returned
// session is cloned to prevent external mutation of internal state.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Get returns a clone of the session for the user, or ErrSessionNotFound.
func (s *InMemoryStore) Get(userID string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return sess.Clone(), nil
}

// Put stores a clone of the provided session snapshot, overwriting any
// existing session for the same user.
func (s *InMemoryStore) Put(sess *core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess.Clone()
	return nil
}

// Delete removes the session for the user. Returns ErrSessionNotFound when
// there was nothing to remove.
func (s *InMemoryStore) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[userID]; !ok {
		return core.ErrSessionNotFound
	}
	delete(s.sessions, userID)
	return nil
}
