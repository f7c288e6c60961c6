// Package cache stores composed layouts, generation responses and rendered
// artifacts behind a small key/value interface.
//
// # Backends
//
//   - [FileCache]: JSON files under a directory, for the CLI
//   - [MemoryCache]: bounded in-process LRU, for the API server
//   - [RedisCache]: shared cache across API instances
//   - [MongoCache]: shared cache with a TTL index doing expiry
//   - [NullCache]: caching disabled
//
// All backends honour per-entry TTLs; a zero TTL means no expiry.
//
// # Keys
//
// Keys are built by a [Keyer] from a content hash of the input and the
// options that influence the output, so changing any option changes the key.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Default TTLs per entry kind.
const (
	LayoutTTL   = 24 * time.Hour
	GenerateTTL = time.Hour
	ArtifactTTL = 24 * time.Hour
)

// GetJSON reads key and decodes it into v. Undecodable entries are deleted
// and reported as a miss.
func GetJSON(ctx context.Context, c Cache, key string, v any) (bool, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = c.Delete(ctx, key)
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	return c.Set(ctx, key, data, ttl)
}

// Clear drops every entry in c if the backend supports it.
func Clear(ctx context.Context, c Cache) error {
	cl, ok := c.(Clearer)
	if !ok {
		return ErrUnsupported
	}
	return cl.Clear(ctx)
}
