package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/storage"
)

// Cached serves repeated Extract calls on the same text from a
// storage.DescriptionCache. Failed calls are never cached.
type Cached struct {
	Engine
	cache       storage.DescriptionCache
	fingerprint string
	logger      *slog.Logger
}

// WithCache decorates e with a result cache. fingerprint identifies the
// engine configuration; changing it invalidates previous entries.
func WithCache(e Engine, cache storage.DescriptionCache, fingerprint string, logger *slog.Logger) (*Cached, error) {
	if e == nil {
		return nil, ErrEngineRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{
		Engine:      e,
		cache:       cache,
		fingerprint: fingerprint,
		logger:      logger.With("component", "engine-cache", "engine", e.Name()),
	}, nil
}

// Key returns the cache key of text for this engine.
func (c *Cached) Key(text string) core.ID {
	return core.IDFromContent(c.Name() + "\x00" + c.fingerprint + "\x00" + text)
}

// Extract returns the cached result for text or runs the wrapped engine and
// stores its result. Cache failures degrade to uncached calls.
func (c *Cached) Extract(ctx context.Context, text string) ([]core.RawDescription, error) {
	key := c.Key(text)

	entry, err := c.cache.Get(ctx, c.Name(), key)
	switch {
	case err == nil:
		c.logger.Debug("cache hit", "descriptions", len(entry.Descriptions))
		return entry.Descriptions, nil
	case errors.Is(err, storage.ErrNotFound):
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		c.logger.Warn("cache read failed", "error", err)
	}

	descs, err := c.Engine.Extract(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Put(ctx, key, &storage.CacheEntry{Engine: c.Name(), Descriptions: descs}); err != nil {
		c.logger.Warn("cache write failed", "error", err)
	}
	return descs, nil
}

// Unwrap returns the decorated engine.
func (c *Cached) Unwrap() Engine {
	return c.Engine
}
