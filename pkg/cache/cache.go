// Package cache provides pluggable storage for derivation results.
//
// Deriving a deterministic system, or a random one with a fixed seed, always
// yields the same generations, so results are cached under a key derived
// from the full request (system, engine, iterations, seed). Backends:
//
//   - [FileCache]: per-user directory, the CLI default
//   - [NullCache]: disabled caching
//   - [RedisCache]: shared cache for multi-instance serve deployments
//   - [MongoCache]: document store with TTL-indexed expiry
//
// All backends store opaque byte payloads; serialization is the caller's
// concern.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all storage backends implement.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long derivation results stay cached by default.
// Results never go stale - the TTL only bounds storage growth.
const DefaultTTL = 30 * 24 * time.Hour

// DeriveKeyOpts are the request parameters that determine a derivation
// result. Two requests with equal opts produce byte-identical results.
type DeriveKeyOpts struct {
	Engine     string // engine variant name
	Iterations uint   // requested generation count
	Seed       uint64 // randomness seed; ignored semantically for deterministic engines
}

// Keyer generates cache keys.
type Keyer interface {
	// DeriveKey generates a key for a derivation result.
	DeriveKey(system string, opts DeriveKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// DeriveKey generates a key for a derivation result.
// The key format is: derive:hash(system, opts).
func (k *DefaultKeyer) DeriveKey(system string, opts DeriveKeyOpts) string {
	return deriveHash("derive", system, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so independent deployments can
// share one Redis or Mongo instance without key collisions.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DeriveKey generates a prefixed key for a derivation result.
func (k *ScopedKeyer) DeriveKey(system string, opts DeriveKeyOpts) string {
	return k.prefix + k.inner.DeriveKey(system, opts)
}
