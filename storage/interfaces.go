package storage

import (
	"context"
	"time"

	"github.com/poiesic/scenic/core"
)

// CacheEntry is the stored output of one engine run.
type CacheEntry struct {
	Engine       string
	StoredAt     time.Time
	Descriptions []core.RawDescription
}

// DescriptionCache stores engine results keyed by a content-derived ID.
// Implementations must be thread-safe and support concurrent access.
type DescriptionCache interface {
	// Get returns the entry stored for engine and key.
	// Returns ErrNotFound if there is none or it has expired.
	Get(ctx context.Context, engine string, key core.ID) (*CacheEntry, error)

	// Put stores an entry, replacing any previous one for the same key.
	// StoredAt is set when zero.
	Put(ctx context.Context, key core.ID, entry *CacheEntry) error

	// Delete removes one entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, engine string, key core.ID) error

	// Purge removes every entry of an engine, or of all engines when engine
	// is empty, and returns how many were removed.
	Purge(ctx context.Context, engine string) (int, error)

	// Count returns the number of entries of an engine, or of all engines
	// when engine is empty.
	Count(ctx context.Context, engine string) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
