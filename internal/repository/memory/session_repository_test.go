package memory

import (
	"context"
	"testing"

	"campus-chat-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingSession(t *testing.T) {
	r := NewSessionRepository()

	session, err := r.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	r := NewSessionRepository()
	ctx := context.Background()

	s := store.NewSession("s1", 20)
	s.Append(store.Turn{UserText: "hi", BotText: "hello", Intent: "general"})
	require.NoError(t, r.Save(ctx, s))

	got, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.ID)
	require.Len(t, got.History, 1)
	assert.Equal(t, "hi", got.History[0].UserText)
}

// Each Get must hand out an independent copy: two requests appending to the
// same session concurrently would otherwise race on the shared History slice.
func TestGetReturnsIndependentCopies(t *testing.T) {
	r := NewSessionRepository()
	ctx := context.Background()

	s := store.NewSession("s1", 20)
	s.Append(store.Turn{UserText: "first"})
	require.NoError(t, r.Save(ctx, s))

	a, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	b, err := r.Get(ctx, "s1")
	require.NoError(t, err)

	a.Append(store.Turn{UserText: "only in a"})

	assert.Len(t, a.History, 2)
	assert.Len(t, b.History, 1, "mutating one copy must not touch the other")

	// The stored session is untouched until Save
	c, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.History, 1)
}

// Save must detach from the caller's pointer as well.
func TestSaveDetachesFromCaller(t *testing.T) {
	r := NewSessionRepository()
	ctx := context.Background()

	s := store.NewSession("s1", 20)
	s.Append(store.Turn{UserText: "first"})
	require.NoError(t, r.Save(ctx, s))

	s.Append(store.Turn{UserText: "after save"})

	got, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.History, 1)
}

func TestCount(t *testing.T) {
	r := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, store.NewSession("a", 20)))
	require.NoError(t, r.Save(ctx, store.NewSession("b", 20)))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
