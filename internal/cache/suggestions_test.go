package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*SuggestionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSuggestionStore(client, ttl), mr
}

func TestSuggestionStoreRoundTrip(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", []int64{3, 1, 2}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, got)

	assert.True(t, mr.Exists("suggest:session:s1"))
	assert.Equal(t, time.Hour, mr.TTL("suggest:session:s1"))
}

func TestSuggestionStoreMissingSession(t *testing.T) {
	store, _ := newStore(t, time.Hour)

	got, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestionStoreReplaces(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", []int64{1, 2}))
	require.NoError(t, store.Set(ctx, "s1", nil))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestionStoreSessionsAreIsolated(t *testing.T) {
	store, _ := newStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []int64{1}))
	require.NoError(t, store.Set(ctx, "b", []int64{2}))

	a, err := store.Get(ctx, "a")
	require.NoError(t, err)
	b, err := store.Get(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, a)
	assert.Equal(t, []int64{2}, b)
}

func TestSuggestionStoreExpires(t *testing.T) {
	store, mr := newStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", []int64{7}))
	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestionStoreDefaultTTL(t *testing.T) {
	store, mr := newStore(t, 0)

	require.NoError(t, store.Set(context.Background(), "s1", []int64{1}))
	assert.Equal(t, DefaultSuggestionTTL, mr.TTL("suggest:session:s1"))
}

func TestSuggestionStoreCorruptEntry(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	require.NoError(t, mr.Set("suggest:session:s1", "not json"))

	_, err := store.Get(context.Background(), "s1")
	assert.Error(t, err)
}

func TestSuggestionStorePing(t *testing.T) {
	store, mr := newStore(t, time.Hour)
	assert.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
