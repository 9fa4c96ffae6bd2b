package engine

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cr7ritesh/adventure-engine/core"
	"github.com/cr7ritesh/adventure-engine/logging"
	"github.com/cr7ritesh/adventure-engine/narrator"
	"github.com/cr7ritesh/adventure-engine/session"
)

func forestTurn() *narrator.Turn {
	return &narrator.Turn{
		Narrative:    "You enter a forest.",
		Choices:      []string{"Look", "Run", "Wait"},
		ImagePrompt:  "dark forest",
		NewInventory: []string{"torch"},
	}
}

func newTestEngine(t *testing.T) (*Engine, *narrator.MockNarrator, *session.InMemoryStore) {
	t.Helper()
	mock := narrator.NewMockNarrator()
	mock.AddTurn(narrator.OpeningAction, forestTurn())
	store := session.NewInMemoryStore()
	eng := New(mock, func(o *Options) { o.SessionStore = store })
	return eng, mock, store
}

func TestEngine_StartCreatesSession(t *testing.T) {
	eng, _, store := newTestEngine(t)

	resp, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	assert.Contains(t, resp, "A new adventure begins!")
	assert.Contains(t, resp, "You enter a forest.")
	assert.Contains(t, resp, "Image: https://via.placeholder.com/1024x1024.png?text=dark+forest")
	assert.Contains(t, resp, "1. Look")
	assert.Contains(t, resp, "2. Run")
	assert.Contains(t, resp, "3. Wait")
	assert.Contains(t, resp, "4. Or, type your own action...")

	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"You enter a forest."}, sess.StoryLog)
	assert.Equal(t, []string{"torch"}, sess.Inventory)
}

func TestEngine_StartTwiceIsPeek(t *testing.T) {
	eng, _, store := newTestEngine(t)

	_, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	resp, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, resp, "You are already in an adventure!")
	assert.Contains(t, resp, "You enter a forest.")

	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Len(t, sess.StoryLog, 1, "duplicate start must not advance the story")
}

func TestEngine_StartFailureLeavesNoSession(t *testing.T) {
	eng, mock, store := newTestEngine(t)
	mock.FailWith(errors.New("backend down"))

	_, err := eng.Start(context.Background(), "u1")
	require.Error(t, err)

	_, err = store.Get("u1")
	assert.True(t, errors.Is(err, core.ErrSessionNotFound), "no partial session on failure")
}

func TestEngine_ChooseAppendsTwoEntries(t *testing.T) {
	eng, mock, store := newTestEngine(t)
	mock.AddTurn("Run", &narrator.Turn{
		Narrative:    "You flee safely.",
		Choices:      []string{"Rest", "Climb", "Shout"},
		ImagePrompt:  "moonlit clearing",
		NewInventory: []string{},
	})

	_, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	resp, err := eng.Choose(context.Background(), "u1", "Run")
	require.NoError(t, err)
	assert.Contains(t, resp, "You flee safely.")
	assert.NotContains(t, resp, "A new adventure begins!")

	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"You enter a forest.", "Player chose: Run", "You flee safely."}, sess.StoryLog)
	assert.Empty(t, sess.Inventory, "inventory is fully replaced each turn")
}

func TestEngine_ChooseWithoutSession(t *testing.T) {
	eng, _, store := newTestEngine(t)

	resp, err := eng.Choose(context.Background(), "u1", "Run")
	require.NoError(t, err)
	assert.Equal(t, MsgNoSession, resp)

	_, err = store.Get("u1")
	assert.True(t, errors.Is(err, core.ErrSessionNotFound), "rejected choose must not create a session")
}

func TestEngine_ChooseFailureLeavesLogUntouched(t *testing.T) {
	eng, mock, store := newTestEngine(t)

	_, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	mock.FailWith(errors.New("backend down"))
	_, err = eng.Choose(context.Background(), "u1", "Run")
	require.Error(t, err)

	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Len(t, sess.StoryLog, 1)
}

func TestEngine_Status(t *testing.T) {
	eng, mock, _ := newTestEngine(t)

	resp, err := eng.Status("u1")
	require.NoError(t, err)
	assert.Equal(t, MsgNoSession, resp)

	_, err = eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	resp, err = eng.Status("u1")
	require.NoError(t, err)
	assert.Equal(t, "Your inventory contains: torch", resp)

	mock.AddTurn("Drop everything", &narrator.Turn{
		Narrative:    "Your pack is empty now.",
		Choices:      []string{"Go on", "Go back", "Sit"},
		ImagePrompt:  "empty pack",
		NewInventory: []string{},
	})
	_, err = eng.Choose(context.Background(), "u1", "Drop everything")
	require.NoError(t, err)

	resp, err = eng.Status("u1")
	require.NoError(t, err)
	assert.Equal(t, MsgEmptyInventory, resp)
}

func TestEngine_ResetIsIdempotent(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	resp, err := eng.Reset("u1")
	require.NoError(t, err)
	assert.Equal(t, MsgReset, resp)

	status, err := eng.Status("u1")
	require.NoError(t, err)
	assert.Equal(t, MsgNoSession, status)

	resp, err = eng.Reset("u1")
	require.NoError(t, err)
	assert.Equal(t, MsgNothingToReset, resp)

	again, err := eng.Reset("u1")
	require.NoError(t, err)
	assert.Equal(t, resp, again)
}

func TestEngine_ConcurrentChoosesStaySequential(t *testing.T) {
	eng, mock, store := newTestEngine(t)
	mock.AddTurn("Run", &narrator.Turn{
		Narrative:    "You run.",
		Choices:      []string{"A", "B", "C"},
		ImagePrompt:  "running",
		NewInventory: []string{},
	})

	_, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	const turns = 8
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := eng.Choose(context.Background(), "u1", "Run")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sess, err := store.Get("u1")
	require.NoError(t, err)
	assert.Len(t, sess.StoryLog, 1+2*turns, "every turn must append exactly two entries")
}

func TestEngine_NarratorCallLogsIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelDebug, Format: "json", Output: &buf})

	mock := narrator.NewMockNarrator()
	mock.AddTurn(narrator.OpeningAction, forestTurn())
	eng := New(mock, func(o *Options) { o.Logger = logger })

	_, err := eng.Start(context.Background(), "u1")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Narrator call completed"`)
	assert.Contains(t, out, `"user_id":"u1"`)
	assert.Contains(t, out, `"invocation_id":"`)
}
