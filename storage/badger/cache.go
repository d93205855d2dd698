package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/scenic/core"
	"github.com/poiesic/scenic/storage"
)

const (
	// DefaultTTL is how long cache entries live unless configured otherwise.
	DefaultTTL = 7 * 24 * time.Hour

	gcDiscardRatio = 0.5
)

// DescriptionCache implements storage.DescriptionCache for BadgerDB.
type DescriptionCache struct {
	backend     *Backend
	ownsBackend bool
	ttl         time.Duration
	logger      *slog.Logger
}

var _ storage.DescriptionCache = (*DescriptionCache)(nil)

// CacheOption configures a DescriptionCache.
type CacheOption func(*DescriptionCache)

// WithTTL sets the lifetime of stored entries. Zero disables expiry.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *DescriptionCache) {
		c.ttl = ttl
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *DescriptionCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewDescriptionCache opens a cache stored in the directory at path.
func NewDescriptionCache(path string, opts ...CacheOption) (*DescriptionCache, error) {
	return openCache(path, false, opts)
}

// NewDescriptionCacheOn creates a cache on an existing backend. Closing the
// cache leaves the backend open.
func NewDescriptionCacheOn(backend *Backend, opts ...CacheOption) *DescriptionCache {
	c, _ := newCache(opts)
	c.backend = backend
	return c
}

func openCache(path string, inMemory bool, opts []CacheOption) (*DescriptionCache, error) {
	c, base := newCache(opts)
	backend, err := OpenBackend(path, inMemory, base)
	if err != nil {
		return nil, fmt.Errorf("open description cache: %w", err)
	}
	c.backend = backend
	c.ownsBackend = true
	return c, nil
}

// newCache applies opts and returns the cache with the logger it was given.
func newCache(opts []CacheOption) (*DescriptionCache, *slog.Logger) {
	c := &DescriptionCache{
		ttl:    DefaultTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	base := c.logger
	c.logger = base.With("component", "description-cache")
	return c, base
}

// Get returns the entry stored for engine and key.
func (c *DescriptionCache) Get(ctx context.Context, engine string, key core.ID) (*storage.CacheEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var entry *storage.CacheEntry
	err := c.backend.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCacheKey(engine, uint64(key)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			entry, unmarshalErr = storage.UnmarshalCacheEntry(val)
			return unmarshalErr
		})
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Put stores an entry under its engine and key.
func (c *DescriptionCache) Put(ctx context.Context, key core.ID, entry *storage.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry.StoredAt.IsZero() {
		entry.StoredAt = time.Now().UTC()
	}
	return c.backend.Update(func(tx *badger.Txn) error {
		e := badger.NewEntry(makeCacheKey(entry.Engine, uint64(key)), storage.MarshalCacheEntry(entry))
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return tx.SetEntry(e)
	})
}

// Delete removes one entry.
func (c *DescriptionCache) Delete(ctx context.Context, engine string, key core.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.backend.Update(func(tx *badger.Txn) error {
		return tx.Delete(makeCacheKey(engine, uint64(key)))
	})
}

// Purge removes every entry of an engine, or all entries when engine is empty.
func (c *DescriptionCache) Purge(ctx context.Context, engine string) (int, error) {
	keys, err := c.keys(ctx, engine)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	wb := c.backend.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}
	if err := c.backend.RunGC(gcDiscardRatio); err != nil {
		c.logger.Warn("value log gc failed", "error", err)
	}
	c.logger.Debug("purged cache entries", "engine", engine, "count", len(keys))
	return len(keys), nil
}

// Count returns the number of live entries of an engine.
func (c *DescriptionCache) Count(ctx context.Context, engine string) (int, error) {
	keys, err := c.keys(ctx, engine)
	return len(keys), err
}

func (c *DescriptionCache) keys(ctx context.Context, engine string) ([][]byte, error) {
	var keys [][]byte
	err := c.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeCachePrefix(engine)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}

// Close closes the backend if the cache opened it.
func (c *DescriptionCache) Close() error {
	if !c.ownsBackend {
		return nil
	}
	return c.backend.Close()
}
