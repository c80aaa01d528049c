package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStoreFixedWindow(t *testing.T) {
	store, _ := newTestRedisStore(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	policy := Policy{Name: "strict", Limit: 2, Window: time.Hour}
	ctx := context.Background()

	first, err := store.Take(ctx, policy, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)
	assert.Equal(t, 2, first.Limit)

	second, err := store.Take(ctx, policy, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)

	third, err := store.Take(ctx, policy, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, 0, third.Remaining)
	assert.Greater(t, third.ResetAfter(now), 0)
	assert.LessOrEqual(t, third.ResetAfter(now), 3600)

	other, err := store.Take(ctx, policy, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestRedisStoreNextWindow(t *testing.T) {
	store, _ := newTestRedisStore(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	policy := Policy{Name: "strict", Limit: 1, Window: time.Minute}
	ctx := context.Background()

	d, err := store.Take(ctx, policy, "k")
	require.NoError(t, err)
	require.True(t, d.Allowed)

	d, err = store.Take(ctx, policy, "k")
	require.NoError(t, err)
	require.False(t, d.Allowed)

	now = now.Add(time.Minute)
	d, err = store.Take(ctx, policy, "k")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisStoreKeyExpires(t *testing.T) {
	store, mr := newTestRedisStore(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	policy := Policy{Name: "global", Limit: 5, Window: 15 * time.Minute}
	_, err := store.Take(context.Background(), policy, "k")
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Greater(t, mr.TTL(keys[0]), time.Duration(0))

	mr.FastForward(16 * time.Minute)
	assert.Empty(t, mr.Keys())
}

func TestRedisStoreConnectionError(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, err := store.Take(context.Background(), GlobalPolicy, "k")
	assert.Error(t, err)
}

func TestNewRedisStoreFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := NewRedisStoreFromURL(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer store.Close()

	_, err = NewRedisStoreFromURL(context.Background(), "::not a url")
	assert.Error(t, err)
}
