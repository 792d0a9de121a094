package redisstore

import (
	"context"
	"testing"

	"campus-chat-be/pkg/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SessionRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionRepository(client)
}

func TestGetMissingSession(t *testing.T) {
	repo := newTestRepository(t)

	session, err := repo.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	session := store.NewSession("s1", 20)
	session.Append(store.Turn{UserText: "hi", BotText: "hello", Intent: "general"})
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "s1", loaded.ID)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "hi", loaded.History[0].UserText)
	assert.Equal(t, 20, loaded.MaxTurns)
}

func TestCount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, store.NewSession("s1", 20)))
	require.NoError(t, repo.Save(ctx, store.NewSession("s2", 20)))

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
