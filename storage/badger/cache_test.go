package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, opts ...CacheOption) *DescriptionCache {
	t.Helper()
	cache, err := NewMemoryDescriptionCache(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func entryFor(engine string, contents ...string) *storage.CacheEntry {
	entry := &storage.CacheEntry{Engine: engine}
	for i, c := range contents {
		entry.Descriptions = append(entry.Descriptions, core.RawDescription{
			Content:         c,
			Type:            core.DescriptionTypeLocation,
			ConfidenceScore: 0.5,
			SourceEngine:    engine,
			Position:        i * 100,
		})
	}
	return entry
}

func TestDescriptionCache_PutGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := core.IDFromContent("chapter one")

	require.NoError(t, cache.Put(ctx, key, entryFor("advanced", "A grey castle.", "A green hill.")))

	entry, err := cache.Get(ctx, "advanced", key)
	require.NoError(t, err)
	assert.Equal(t, "advanced", entry.Engine)
	assert.False(t, entry.StoredAt.IsZero())
	require.Len(t, entry.Descriptions, 2)
	assert.Equal(t, "A green hill.", entry.Descriptions[1].Content)
	assert.Equal(t, 100, entry.Descriptions[1].Position)

	_, err = cache.Get(ctx, "lexical", key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDescriptionCache_PutReplaces(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := core.ID(7)

	require.NoError(t, cache.Put(ctx, key, entryFor("advanced", "first")))
	require.NoError(t, cache.Put(ctx, key, entryFor("advanced", "second", "third")))

	entry, err := cache.Get(ctx, "advanced", key)
	require.NoError(t, err)
	assert.Len(t, entry.Descriptions, 2)

	count, err := cache.Count(ctx, "advanced")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDescriptionCache_Delete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, core.ID(1), entryFor("advanced", "x")))
	require.NoError(t, cache.Delete(ctx, "advanced", core.ID(1)))
	require.NoError(t, cache.Delete(ctx, "advanced", core.ID(99)))

	_, err := cache.Get(ctx, "advanced", core.ID(1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDescriptionCache_Purge(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, cache.Put(ctx, core.ID(i), entryFor("advanced", "a")))
	}
	require.NoError(t, cache.Put(ctx, core.ID(1), entryFor("lexical", "b")))

	total, err := cache.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	removed, err := cache.Purge(ctx, "advanced")
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	remaining, err := cache.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	removed, err = cache.Purge(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = cache.Purge(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestDescriptionCache_TTL(t *testing.T) {
	cache := newTestCache(t, WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, core.ID(1), entryFor("advanced", "x")))
	_, err := cache.Get(ctx, "advanced", core.ID(1))
	require.NoError(t, err)

	// Badger expiry has one-second resolution.
	time.Sleep(2100 * time.Millisecond)
	_, err = cache.Get(ctx, "advanced", core.ID(1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDescriptionCache_Cancelled(t *testing.T) {
	cache := newTestCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cache.Get(ctx, "advanced", core.ID(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, cache.Put(ctx, core.ID(1), entryFor("advanced", "x")), context.Canceled)
}

func TestDescriptionCache_SharedBackend(t *testing.T) {
	backend, err := OpenBackend("", true, nil)
	require.NoError(t, err)
	defer backend.Close()

	cache := NewDescriptionCacheOn(backend)
	require.NoError(t, cache.Put(context.Background(), core.ID(1), entryFor("advanced", "x")))
	require.NoError(t, cache.Close())
	assert.False(t, backend.IsClosed())
}

func TestDescriptionCache_Closed(t *testing.T) {
	cache, err := NewMemoryDescriptionCache()
	require.NoError(t, err)
	require.NoError(t, cache.Close())

	_, err = cache.Get(context.Background(), "advanced", core.ID(1))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
