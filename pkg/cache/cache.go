// Package cache provides byte-level caches for remote git metadata.
//
// The validate command asks remote servers for their branch lists once per
// repository URL; on metadata checkouts with hundreds of entries that is
// the dominant cost of a run. Cache implementations store those responses
// keyed by URL so repeated runs stay fast.
//
// Three backends are provided: [FileCache] (default, XDG cache directory),
// [RedisCache] (shared between machines, e.g. on CI), and [NullCache]
// (caching disabled).
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores raw bytes under string keys with per-entry expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// RemoteHeadsKey builds the cache key for a repository's branch list. The
// URL is hashed so keys stay uniform regardless of scheme, path depth, or
// embedded credentials.
func RemoteHeadsKey(url string) string {
	return "heads:" + Hash([]byte(url))
}

// Hash returns the full 64-character hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
