package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/verdantlab/lsys/pkg/cache"
	lsyserrors "github.com/verdantlab/lsys/pkg/errors"
	"github.com/verdantlab/lsys/pkg/lsystem"
	"github.com/verdantlab/lsys/pkg/observability"
	"github.com/verdantlab/lsys/pkg/system"
)

// Result is a completed derivation.
type Result struct {
	// RunID uniquely identifies this derivation run. Cached results get a
	// fresh RunID per request; only the generations are reused.
	RunID string `json:"run_id"`

	// System is the derived system's name.
	System string `json:"system"`

	// Engine is the engine variant the system uses.
	Engine string `json:"engine"`

	// Iterations is the requested generation count.
	Iterations uint `json:"iterations"`

	// Seed is the randomness seed the derivation ran with. Nil for
	// deterministic systems, set for random ones - including an explicit
	// seed of zero.
	Seed *uint64 `json:"seed,omitempty"`

	// Generations holds every generation from the axiom (index 0) through
	// the final iteration, as strings over the system's rune alphabet.
	Generations []string `json:"generations"`

	// Cached reports whether the generations came from the cache.
	Cached bool `json:"cached"`

	// Duration is the wall time of the derivation (or cache read).
	Duration time.Duration `json:"duration_ns"`
}

// Final returns the last generation, or "" for an impossible empty result.
func (r *Result) Final() string {
	if len(r.Generations) == 0 {
		return ""
	}
	return r.Generations[len(r.Generations)-1]
}

// Runner executes derivations with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely share one Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Derive runs one derivation, reading and populating the cache.
func (r *Runner) Derive(ctx context.Context, opts Options) (*Result, error) {
	sys, err := opts.ValidateAndSetDefaults()
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      uuid.NewString(),
		System:     sys.Name,
		Engine:     string(sys.Engine),
		Iterations: opts.Iterations,
	}
	var keySeed uint64
	if sys.Random() {
		seed := opts.Seed
		result.Seed = &seed
		keySeed = opts.Seed
	}

	keyOpts := cache.DeriveKeyOpts{
		Engine:     result.Engine,
		Iterations: opts.Iterations,
		Seed:       keySeed,
	}
	cacheKey := r.Keyer.DeriveKey(sys.Name, keyOpts)

	start := time.Now()
	observability.Derive().OnDeriveStart(ctx, sys.Name, opts.Iterations)

	if !opts.Refresh {
		if gens, ok := r.readCached(ctx, cacheKey); ok {
			result.Generations = gens
			result.Cached = true
			result.Duration = time.Since(start)
			observability.Derive().OnDeriveComplete(ctx, sys.Name, len(result.Final()), result.Duration, nil)
			r.Logger.Debug("derivation served from cache", "system", sys.Name, "iterations", opts.Iterations)
			return result, nil
		}
	}

	gens, err := r.run(ctx, sys, opts)
	if err != nil {
		observability.Derive().OnDeriveComplete(ctx, sys.Name, 0, time.Since(start), err)
		return nil, lsyserrors.Wrap(lsyserrors.ErrCodeInternal, err, "derive %s", sys.Name)
	}
	result.Generations = gens
	result.Duration = time.Since(start)
	observability.Derive().OnDeriveComplete(ctx, sys.Name, len(result.Final()), result.Duration, nil)

	r.writeCached(ctx, cacheKey, gens)

	r.Logger.Debug("derivation complete",
		"system", sys.Name,
		"iterations", opts.Iterations,
		"length", len(result.Final()),
		"duration", result.Duration)

	return result, nil
}

// run executes the engine and converts generations to strings.
func (r *Runner) run(ctx context.Context, sys *system.System, opts Options) ([]string, error) {
	var src lsystem.Source
	if sys.Random() {
		src = lsystem.NewSource(opts.Seed)
	}

	raw, err := sys.Generations(opts.Iterations, src)
	if err != nil {
		return nil, err
	}

	gens := make([]string, len(raw))
	for i, g := range raw {
		gens[i] = string(g)
		if i > 0 {
			observability.Derive().OnGeneration(ctx, sys.Name, uint(i), len(g))
		}
	}
	return gens, nil
}

// readCached loads generations from the cache, tolerating any cache error
// as a miss.
func (r *Runner) readCached(ctx context.Context, key string) ([]string, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "derive")
		return nil, false
	}

	var gens []string
	if err := json.Unmarshal(data, &gens); err != nil {
		r.Logger.Warn("cache entry corrupt, ignoring", "err", err)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, "derive")
	return gens, true
}

// writeCached stores generations in the cache; failures are logged, never
// surfaced.
func (r *Runner) writeCached(ctx context.Context, key string, gens []string) {
	data, err := json.Marshal(gens)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "derive", len(data))
}
