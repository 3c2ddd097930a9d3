package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v", 0))
	val, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	require.NoError(t, store.Del(ctx, "k"))
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "k", "v", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreHash(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.HSet(ctx, "h", "f1", "v1"))
	require.NoError(t, store.HSet(ctx, "h", "f2", "v2"))

	exists, err := store.HExists(ctx, "h", "f1")
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := store.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"f1": "v1", "f2": "v2"}, all)

	require.NoError(t, store.HDel(ctx, "h", "f1"))
	exists, _ = store.HExists(ctx, "h", "f1")
	assert.False(t, exists)
}

func TestMemoryStoreSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SAdd(ctx, "s", "a"))
	require.NoError(t, store.SAdd(ctx, "s", "a"))
	require.NoError(t, store.SAdd(ctx, "s", "b"))

	members, err := store.SMembers(ctx, "s")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, members)

	removed, err := store.SRem(ctx, "s", "a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	removed, err = store.SRem(ctx, "s", "a")
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}
