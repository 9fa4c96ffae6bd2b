package session

import (
	"errors"
	"testing"

	"github.com/cr7ritesh/adventure-engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*InMemoryStore)(nil)

func TestInMemoryStore_GetMissing(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get("u1")
	assert.True(t, errors.Is(err, core.ErrSessionNotFound))
}

func TestInMemoryStore_PutGetRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	sess := core.NewSession("u1", "You enter a forest.", []string{"torch"})

	require.NoError(t, store.Put(sess))

	got, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"You enter a forest."}, got.StoryLog)
	assert.Equal(t, []string{"torch"}, got.Inventory)
}

func TestInMemoryStore_ReturnsClones(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Put(core.NewSession("u1", "Opening.", nil)))

	got, err := store.Get("u1")
	require.NoError(t, err)
	got.RecordTurn("Run", "You flee.", nil)

	again, err := store.Get("u1")
	require.NoError(t, err)
	assert.Len(t, again.StoryLog, 1, "store contents should not observe caller mutations")
}

func TestInMemoryStore_PutOverwrites(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Put(core.NewSession("u1", "First.", nil)))

	replacement := core.NewSession("u1", "Second.", []string{"key"})
	require.NoError(t, store.Put(replacement))

	got, err := store.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Second."}, got.StoryLog)
	assert.Equal(t, []string{"key"}, got.Inventory)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Put(core.NewSession("u1", "Opening.", nil)))

	require.NoError(t, store.Delete("u1"))
	_, err := store.Get("u1")
	assert.True(t, errors.Is(err, core.ErrSessionNotFound))

	err = store.Delete("u1")
	assert.True(t, errors.Is(err, core.ErrSessionNotFound), "second delete should report missing session")
}
