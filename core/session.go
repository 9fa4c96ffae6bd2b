package core

import (
	"fmt"
	"sync"
	"time"
)

// Session represents one user's in-progress adventure. It is safe for
// concurrent access.
//
// Contract:
//   - StoryLog is append-only except for full deletion of the session; its
//     order is meaningful because it is replayed verbatim into future
//     narrator prompts as the "story so far"
//   - StoryLog interleaves narrative text and player-action records and is
//     never empty once a session exists (seeded by the first turn)
//   - Inventory is fully replaced each turn by the narrator's reported
//     inventory, never merged
//   - Clone performs deep copies of slices for safe divergence.
type Session struct {
	UserID    string    `json:"user_id"`
	StoryLog  []string  `json:"story_log"`
	Inventory []string  `json:"inventory"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
	mu        sync.RWMutex
}

// NewSession creates a session seeded with the opening narrative and the
// narrator's initial inventory.
func NewSession(userID, narrative string, inventory []string) *Session {
	now := time.Now()
	return &Session{
		UserID:    userID,
		StoryLog:  []string{narrative},
		Inventory: append([]string(nil), inventory...),
		Created:   now,
		Updated:   now,
	}
}

// PlayerActionRecord formats a player choice as the story-log record that is
// replayed into future prompts.
func PlayerActionRecord(choice string) string {
	return fmt.Sprintf("Player chose: %s", choice)
}

// RecordTurn appends the player-action record followed by the new narrative
// to the story log and replaces the inventory, updating the Updated timestamp.
func (s *Session) RecordTurn(choice, narrative string, inventory []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.StoryLog = append(s.StoryLog, PlayerActionRecord(choice), narrative)
	s.Inventory = append([]string(nil), inventory...)
	s.Updated = time.Now()
}

// LastEntry returns the most recent story-log entry, or "" for an
// unseeded session.
func (s *Session) LastEntry() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.StoryLog) == 0 {
		return ""
	}
	return s.StoryLog[len(s.StoryLog)-1]
}

// Log returns a defensive copy of the story log to prevent callers from
// mutating internal state.
func (s *Session) Log() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := make([]string, len(s.StoryLog))
	copy(log, s.StoryLog)
	return log
}

// Items returns a defensive copy of the inventory.
func (s *Session) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]string, len(s.Inventory))
	copy(items, s.Inventory)
	return items
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{
		UserID:    s.UserID,
		StoryLog:  make([]string, len(s.StoryLog)),
		Inventory: make([]string, len(s.Inventory)),
		Created:   s.Created,
		Updated:   s.Updated,
	}
	copy(clone.StoryLog, s.StoryLog)
	copy(clone.Inventory, s.Inventory)
	return clone
}

// SessionStore persists sessions keyed by user id.
//
// Get returns ErrSessionNotFound when no session exists for the user.
// Put performs a full overwrite (insert or replace). Delete returns
// ErrSessionNotFound when there was nothing to remove so callers can
// distinguish a no-op reset.
type SessionStore interface {
	Get(userID string) (*Session, error)
	Put(session *Session) error
	Delete(userID string) error
}
