// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about derivations and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries), keeps the library free of observability-framework
// dependencies, and allows different backends.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDeriveHooks(&myDeriveHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Derive().OnDeriveStart(ctx, system, iterations)
//	// ... derive ...
//	observability.Derive().OnDeriveComplete(ctx, system, length, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Derive Hooks
// =============================================================================

// DeriveHooks receives events from the derivation pipeline.
type DeriveHooks interface {
	// OnDeriveStart records the start of a derivation.
	OnDeriveStart(ctx context.Context, system string, iterations uint)

	// OnGeneration records one completed rewrite pass and the resulting
	// sequence length.
	OnGeneration(ctx context.Context, system string, generation uint, length int)

	// OnDeriveComplete records the end of a derivation. length is the final
	// sequence length; zero when err is non-nil.
	OnDeriveComplete(ctx context.Context, system string, length int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDeriveHooks is a no-op implementation of DeriveHooks.
type NoopDeriveHooks struct{}

func (NoopDeriveHooks) OnDeriveStart(context.Context, string, uint)                       {}
func (NoopDeriveHooks) OnGeneration(context.Context, string, uint, int)                   {}
func (NoopDeriveHooks) OnDeriveComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	deriveHooks DeriveHooks = NoopDeriveHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetDeriveHooks registers custom derive hooks.
// This should be called once at application startup before any derivations.
func SetDeriveHooks(h DeriveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		deriveHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Derive returns the registered derive hooks.
func Derive() DeriveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return deriveHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	deriveHooks = NoopDeriveHooks{}
	cacheHooks = NoopCacheHooks{}
}
