package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cr7ritesh/adventure-engine/core"
	"github.com/cr7ritesh/adventure-engine/logging"
	"github.com/cr7ritesh/adventure-engine/narrator"
	"github.com/cr7ritesh/adventure-engine/scene"
	"github.com/cr7ritesh/adventure-engine/session"
)

// User-visible messages. The session-state cases are not errors: the call
// succeeds and the message tells the player what to do instead.
const (
	// MsgNoSession is returned by choose and status without an active session.
	MsgNoSession = "You haven't started an adventure yet! Use the 'start_adventure' tool first."
	// MsgEmptyInventory is returned by status when the inventory is empty.
	MsgEmptyInventory = "Your inventory is empty."
	// MsgReset confirms a completed reset.
	MsgReset = "Your adventure has been reset. You can now start a new one by using the 'start_adventure' tool."
	// MsgNothingToReset is returned by reset without an active session.
	MsgNothingToReset = "You do not have an active adventure to reset."
)

// Options holds dependency overrides passed to New().
type Options struct {
	// SessionStore persists per-user adventure state.
	SessionStore core.SessionStore
	// Scenes resolves image prompts into media URLs.
	Scenes scene.Generator
	// Logger receives structured engine logs.
	Logger logging.Logger
}

// Engine coordinates narrative turns: it resolves session state, invokes the
// narrator and scene generator, applies the turn to the store, and formats
// the user-visible response. Public methods are safe for concurrent use;
// turns for the same user id are serialized.
type Engine struct {
	narrator narrator.Narrator
	store    core.SessionStore
	scenes   scene.Generator
	logger   logging.Logger

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// New constructs an Engine with optional overrides. Unset services default
// to the in-memory store, the placeholder scene generator and a no-op logger.
func New(n narrator.Narrator, optFns ...func(o *Options)) *Engine {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Scenes:       scene.NewPlaceholder(),
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{
		narrator:  n,
		store:     opts.SessionStore,
		scenes:    opts.Scenes,
		logger:    opts.Logger,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// lockUser serializes turn processing per user id. Locks are never removed;
// the map grows with the user population, matching the unbounded session map.
func (e *Engine) lockUser(userID string) func() {
	e.mu.Lock()
	lock, ok := e.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.userLocks[userID] = lock
	}
	e.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}

// Start begins a new adventure for the user. Starting over an active session
// is not an error: it returns the most recent story update without advancing
// the narrative.
func (e *Engine) Start(ctx context.Context, userID string) (string, error) {
	unlock := e.lockUser(userID)
	defer unlock()

	sess, err := e.store.Get(userID)
	if err == nil {
		return fmt.Sprintf("You are already in an adventure! Your last update was: %s", sess.LastEntry()), nil
	}
	if !errors.Is(err, core.ErrSessionNotFound) {
		return "", fmt.Errorf("read session: %w", err)
	}

	turn, err := e.narrate(ctx, userID, nil, narrator.OpeningAction)
	if err != nil {
		return "", err
	}
	imageURL := e.scenes.ImageURL(turn.ImagePrompt)

	if err := e.store.Put(core.NewSession(userID, turn.Narrative, turn.NewInventory)); err != nil {
		return "", fmt.Errorf("write session: %w", err)
	}
	return formatTurn(turn, imageURL, true), nil
}

// Choose advances the adventure with the player's choice.
func (e *Engine) Choose(ctx context.Context, userID, choice string) (string, error) {
	unlock := e.lockUser(userID)
	defer unlock()

	sess, err := e.store.Get(userID)
	if errors.Is(err, core.ErrSessionNotFound) {
		return MsgNoSession, nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	turn, err := e.narrate(ctx, userID, sess.Log(), choice)
	if err != nil {
		// The store stays untouched: no partial turn is ever recorded.
		return "", err
	}
	imageURL := e.scenes.ImageURL(turn.ImagePrompt)

	sess.RecordTurn(choice, turn.Narrative, turn.NewInventory)
	if err := e.store.Put(sess); err != nil {
		return "", fmt.Errorf("write session: %w", err)
	}
	return formatTurn(turn, imageURL, false), nil
}

// Status reports the user's current inventory.
func (e *Engine) Status(userID string) (string, error) {
	sess, err := e.store.Get(userID)
	if errors.Is(err, core.ErrSessionNotFound) {
		return MsgNoSession, nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	items := sess.Items()
	if len(items) == 0 {
		return MsgEmptyInventory, nil
	}
	return fmt.Sprintf("Your inventory contains: %s", strings.Join(items, ", ")), nil
}

// Reset deletes the user's adventure. Idempotent: a second reset reports
// that there was nothing to remove.
func (e *Engine) Reset(userID string) (string, error) {
	unlock := e.lockUser(userID)
	defer unlock()

	err := e.store.Delete(userID)
	if errors.Is(err, core.ErrSessionNotFound) {
		return MsgNothingToReset, nil
	}
	if err != nil {
		return "", fmt.Errorf("delete session: %w", err)
	}
	return MsgReset, nil
}

// narrate invokes the backend with call logging and a per-call invocation id.
func (e *Engine) narrate(ctx context.Context, userID string, storyLog []string, action string) (*narrator.Turn, error) {
	invocationID := uuid.NewString()
	info := e.narrator.Info()

	start := time.Now()
	turn, err := e.narrator.Narrate(ctx, storyLog, action)
	dur := time.Since(start)

	if nl, ok := e.logger.(logging.NarratorCallLogger); ok {
		nl.LogNarratorCall(info.Provider, info.Name, userID, invocationID, dur, err == nil, err)
	} else if err != nil {
		e.logger.Error("narrator call failed user=%s invocation=%s provider=%s err=%v", userID, invocationID, info.Provider, err)
	} else {
		e.logger.Debug("narrator call completed user=%s invocation=%s provider=%s duration=%s", userID, invocationID, info.Provider, dur)
	}

	if err != nil {
		return nil, fmt.Errorf("narrator: %w", err)
	}
	return turn, nil
}

// formatTurn renders the multi-line turn response shared by start and choose.
// The narrator contract guarantees exactly three choices.
func formatTurn(turn *narrator.Turn, imageURL string, opening bool) string {
	var b strings.Builder
	if opening {
		b.WriteString("A new adventure begins!\n\n")
	}
	b.WriteString(turn.Narrative)
	b.WriteString("\n\nImage: ")
	b.WriteString(imageURL)
	b.WriteString("\n\nWhat do you do?\n")
	fmt.Fprintf(&b, "1. %s\n", turn.Choices[0])
	fmt.Fprintf(&b, "2. %s\n", turn.Choices[1])
	fmt.Fprintf(&b, "3. %s\n", turn.Choices[2])
	b.WriteString("4. Or, type your own action...")
	return b.String()
}
