// Package cache stores solver results between runs.
//
// A [Cache] is a plain byte store with per-entry expiration. Three backends
// are provided:
//
//   - [FileCache]: one JSON file per entry under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several machines solving the
//     same tables
//   - [NullCache]: stores nothing
//
// Keys are produced by a [Keyer] from the content hash of a matrix and the
// name of the algorithm, so an edited table never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// TTLResult is the default lifetime of a cached solver result. Results never
// go stale for an unchanged matrix; the TTL only bounds disk and memory use.
const TTLResult = 30 * 24 * time.Hour

// Cache is a key-value store for serialized results.
type Cache interface {
	// Get returns the value stored under key. The boolean is false on a miss,
	// including when the entry has expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey identifies the result of running algorithm on the matrix whose
	// content hash is matrixHash.
	ResultKey(matrixHash, algorithm string) string
}

// DefaultKeyer produces unprefixed keys of the form "result:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements [Keyer].
func (DefaultKeyer) ResultKey(matrixHash, algorithm string) string {
	return hashKey("result", matrixHash, algorithm)
}
