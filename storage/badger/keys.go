package badger

import (
	"encoding/binary"
)

// Key prefixes for different data types
const (
	descriptionCachePrefix = "desccache"
)

// makeCacheKey generates a composite key for a cache entry.
// Format: prefix:engine:id
func makeCacheKey(engine string, id uint64) []byte {
	prefix := makeCachePrefix(engine)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], id)
	return buf
}

// makeCachePrefix generates the iteration prefix for one engine, or for all
// engines when engine is empty.
// Format: prefix:engine:
func makeCachePrefix(engine string) []byte {
	if engine == "" {
		return []byte(descriptionCachePrefix + ":")
	}
	return []byte(descriptionCachePrefix + ":" + engine + ":")
}
