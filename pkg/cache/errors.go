package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBackend marks failures of the network-backed caches (connection
// refused, timeouts, server-side errors). The pipeline treats any cache
// error as a miss, so ErrBackend surfaces in logs rather than derivations.
var ErrBackend = errors.New("cache backend error")

// RetryableError marks an error as transient. The redis and mongo backends
// wrap their transport errors with it so RetryWithBackoff knows the
// operation is worth another attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is marked transient anywhere in its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Retry budget shared by the network backends. Derivations are cheap to
// recompute, so the budget stays small: a cache that needs more than three
// tries should fail over to a recompute, not stall the request.
const (
	retryAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
)

// RetryWithBackoff runs op up to retryAttempts times, doubling the wait
// between attempts. Errors not marked Retryable fail immediately, and a
// cancelled context aborts the wait.
func RetryWithBackoff(ctx context.Context, op func() error) error {
	delay := retryBaseDelay
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		wait := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			wait.Stop()
			return ctx.Err()
		case <-wait.C:
		}
		delay *= 2
	}
}
