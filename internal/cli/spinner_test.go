package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinner_StopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "working")
	s.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Stop()
		s.Stop()
		s.StopWithError("failed")
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("repeated Stop calls did not return")
	}
}

func TestSpinner_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "working")
	s.Start()

	cancel()

	select {
	case <-s.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
}
