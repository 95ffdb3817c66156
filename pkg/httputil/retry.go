package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a failure as transient. The bridge client wraps
// network errors and 503 responses with it; structured drafting errors are
// never wrapped, so they pass through [Retry] on the first attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay between tries.
// Only errors marked with [RetryableError] are tried again; anything else is
// returned as-is. When every attempt fails the last error is returned, and a
// cancelled context surfaces as ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.As(err, new(*RetryableError)) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
