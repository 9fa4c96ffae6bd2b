package narrator

import (
	"context"
	"fmt"
)

// Turn is the structured result of one narrative turn as reported by the
// backend: the next story beat, exactly three follow-up choices, a short
// prompt for an image generator, and the player's full replacement inventory.
type Turn struct {
	Narrative    string   `json:"narrative"`
	Choices      []string `json:"choices"`
	ImagePrompt  string   `json:"image_prompt"`
	NewInventory []string `json:"new_inventory"`
}

// Info contains metadata about a narrator implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "gemini", "openai", "anthropic", "mock"
}

// Narrator produces the next narrative turn from the story so far and the
// player's latest action. Implementations are stateless per call: they
// receive and return plain data and never retain references across calls.
type Narrator interface {
	Narrate(ctx context.Context, storyLog []string, action string) (*Turn, error)

	// Info returns information about the narrator implementation.
	Info() Info
}

// MockNarrator is a lightweight in-memory Narrator useful for tests. Canned
// turns are keyed by player action; unknown actions yield a deterministic
// placeholder turn so callers always receive a contract-complete result.
type MockNarrator struct {
	info  Info
	turns map[string]*Turn
	err   error
}

// NewMockNarrator constructs an empty MockNarrator.
func NewMockNarrator() *MockNarrator {
	return &MockNarrator{
		info:  Info{Name: "mock", Provider: "mock"},
		turns: make(map[string]*Turn),
	}
}

// AddTurn registers a deterministic canned turn for a player action.
func (m *MockNarrator) AddTurn(action string, turn *Turn) { m.turns[action] = turn }

// FailWith makes every subsequent Narrate call return err.
func (m *MockNarrator) FailWith(err error) { m.err = err }

// Narrate implements Narrator.
func (m *MockNarrator) Narrate(_ context.Context, _ []string, action string) (*Turn, error) {
	if m.err != nil {
		return nil, m.err
	}
	if turn, ok := m.turns[action]; ok {
		return turn, nil
	}
	return &Turn{
		Narrative:    fmt.Sprintf("Mock narrative for: %s", action),
		Choices:      []string{"Choice 1", "Choice 2", "Choice 3"},
		ImagePrompt:  "mock scene",
		NewInventory: []string{},
	}, nil
}

// Info implements Narrator.
func (m *MockNarrator) Info() Info { return m.info }
