package pipeline

import (
	"context"
	"testing"

	"github.com/verdantlab/lsys/pkg/cache"
	lsyserrors "github.com/verdantlab/lsys/pkg/errors"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return NewRunner(c, nil, nil)
}

func TestDerive_Algae(t *testing.T) {
	r := testRunner(t)

	result, err := r.Derive(context.Background(), Options{System: "algae", Iterations: 3})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	want := []string{"A", "AB", "ABA", "ABAAB"}
	if len(result.Generations) != len(want) {
		t.Fatalf("got %d generations, want %d", len(result.Generations), len(want))
	}
	for i, w := range want {
		if result.Generations[i] != w {
			t.Errorf("generation %d = %q, want %q", i, result.Generations[i], w)
		}
	}
	if result.Final() != "ABAAB" {
		t.Errorf("Final() = %q, want %q", result.Final(), "ABAAB")
	}
	if result.Cached {
		t.Error("first derivation reported cached")
	}
	if result.RunID == "" {
		t.Error("missing RunID")
	}
	if result.Engine != "symbol" {
		t.Errorf("Engine = %q, want %q", result.Engine, "symbol")
	}
}

func TestDerive_SecondCallHitsCache(t *testing.T) {
	r := testRunner(t)
	ctx := context.Background()
	opts := Options{System: "algae", Iterations: 5}

	first, err := r.Derive(ctx, opts)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	second, err := r.Derive(ctx, opts)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if !second.Cached {
		t.Error("second derivation should be served from cache")
	}
	if second.Final() != first.Final() {
		t.Errorf("cached result %q differs from fresh %q", second.Final(), first.Final())
	}
	if second.RunID == first.RunID {
		t.Error("cached result should get a fresh RunID")
	}
}

func TestDerive_RefreshBypassesCache(t *testing.T) {
	r := testRunner(t)
	ctx := context.Background()

	if _, err := r.Derive(ctx, Options{System: "algae", Iterations: 2}); err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	result, err := r.Derive(ctx, Options{System: "algae", Iterations: 2, Refresh: true})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if result.Cached {
		t.Error("Refresh should bypass the cache read")
	}
}

func TestDerive_SeedPartitionsCache(t *testing.T) {
	r := testRunner(t)
	ctx := context.Background()

	a, err := r.Derive(ctx, Options{System: "algae-stochastic", Iterations: 8, Seed: 1})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	b, err := r.Derive(ctx, Options{System: "algae-stochastic", Iterations: 8, Seed: 2})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if b.Cached {
		t.Error("different seed must not hit the other seed's cache entry")
	}

	// Same seed again is a hit and reproduces the result.
	again, err := r.Derive(ctx, Options{System: "algae-stochastic", Iterations: 8, Seed: 1})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if !again.Cached {
		t.Error("same seed should hit the cache")
	}
	if again.Final() != a.Final() {
		t.Errorf("seed 1 reproduced %q, want %q", again.Final(), a.Final())
	}
}

func TestDerive_DeterministicSystemIgnoresSeed(t *testing.T) {
	r := testRunner(t)
	ctx := context.Background()

	if _, err := r.Derive(ctx, Options{System: "algae", Iterations: 3, Seed: 1}); err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	result, err := r.Derive(ctx, Options{System: "algae", Iterations: 3, Seed: 2})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if !result.Cached {
		t.Error("seed must not partition the cache for deterministic systems")
	}
	if result.Seed != nil {
		t.Errorf("deterministic result Seed = %d, want none", *result.Seed)
	}
}

func TestDerive_ExplicitZeroSeedReported(t *testing.T) {
	r := testRunner(t)

	result, err := r.Derive(context.Background(), Options{System: "algae-stochastic", Iterations: 4, Seed: 0})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if result.Seed == nil {
		t.Fatal("random system must report its seed, even zero")
	}
	if *result.Seed != 0 {
		t.Errorf("Seed = %d, want 0", *result.Seed)
	}
}

func TestDerive_UnknownSystem(t *testing.T) {
	r := testRunner(t)

	_, err := r.Derive(context.Background(), Options{System: "nope", Iterations: 1})
	if err == nil {
		t.Fatal("expected error for unknown system")
	}
	if !lsyserrors.Is(err, lsyserrors.ErrCodeSystemNotFound) {
		t.Errorf("code = %v, want SYSTEM_NOT_FOUND", lsyserrors.GetCode(err))
	}
}

func TestDerive_InvalidName(t *testing.T) {
	r := testRunner(t)

	_, err := r.Derive(context.Background(), Options{System: "Not A Name", Iterations: 1})
	if !lsyserrors.Is(err, lsyserrors.ErrCodeInvalidSystem) {
		t.Errorf("code = %v, want INVALID_SYSTEM", lsyserrors.GetCode(err))
	}
}

func TestDerive_IterationCap(t *testing.T) {
	r := testRunner(t)

	_, err := r.Derive(context.Background(), Options{System: "algae", Iterations: lsyserrors.MaxIterations + 1})
	if !lsyserrors.Is(err, lsyserrors.ErrCodeInvalidIterations) {
		t.Errorf("code = %v, want INVALID_ITERATIONS", lsyserrors.GetCode(err))
	}
}

func TestDerive_ZeroIterations(t *testing.T) {
	r := testRunner(t)

	result, err := r.Derive(context.Background(), Options{System: "signal"})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if len(result.Generations) != 1 {
		t.Fatalf("got %d generations, want 1 (axiom only)", len(result.Generations))
	}
	if result.Final() != "SCCCCCCC" {
		t.Errorf("Final() = %q, want the axiom", result.Final())
	}
}

func TestNewRunner_NilDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Error("NewRunner should fill nil dependencies with defaults")
	}

	// And a nil-cache runner still derives.
	result, err := r.Derive(context.Background(), Options{System: "algae", Iterations: 1})
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	if result.Final() != "AB" {
		t.Errorf("Final() = %q, want %q", result.Final(), "AB")
	}
}
