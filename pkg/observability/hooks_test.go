package observability

import (
	"context"
	"testing"
	"time"
)

type testDeriveHooks struct {
	starts, generations, completes int
}

func (h *testDeriveHooks) OnDeriveStart(context.Context, string, uint)     { h.starts++ }
func (h *testDeriveHooks) OnGeneration(context.Context, string, uint, int) { h.generations++ }
func (h *testDeriveHooks) OnDeriveComplete(context.Context, string, int, time.Duration, error) {
	h.completes++
}

type testCacheHooks struct {
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	d := NoopDeriveHooks{}
	d.OnDeriveStart(ctx, "algae", 3)
	d.OnGeneration(ctx, "algae", 1, 2)
	d.OnDeriveComplete(ctx, "algae", 5, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "derive")
	c.OnCacheMiss(ctx, "derive")
	c.OnCacheSet(ctx, "derive", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	// Verify defaults are noop
	if _, ok := Derive().(NoopDeriveHooks); !ok {
		t.Error("Derive() should return NoopDeriveHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customDerive := &testDeriveHooks{}
	SetDeriveHooks(customDerive)
	if Derive() != DeriveHooks(customDerive) {
		t.Error("SetDeriveHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != CacheHooks(customCache) {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Nil registrations are ignored
	SetDeriveHooks(nil)
	if Derive() != DeriveHooks(customDerive) {
		t.Error("SetDeriveHooks(nil) should keep existing hooks")
	}

	// Reset restores defaults
	Reset()
	if _, ok := Derive().(NoopDeriveHooks); !ok {
		t.Error("Reset() should restore NoopDeriveHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testDeriveHooks{}
	SetDeriveHooks(h)

	ctx := context.Background()
	Derive().OnDeriveStart(ctx, "algae", 2)
	Derive().OnGeneration(ctx, "algae", 1, 2)
	Derive().OnGeneration(ctx, "algae", 2, 3)
	Derive().OnDeriveComplete(ctx, "algae", 3, time.Millisecond, nil)

	if h.starts != 1 || h.generations != 2 || h.completes != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/2/1", h.starts, h.generations, h.completes)
	}
}
