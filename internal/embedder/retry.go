package embedder

import (
	"context"
	"time"
)

// retryWithBackoff runs fn up to MaxRetries times, growing the delay
// between attempts from InitialBackoffMs by BackoffMultiplier up to
// MaxBackoffMs. Context cancellation stops the loop immediately; once
// retries are exhausted the last attempt's error is returned.
func retryWithBackoff[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	backoff := time.Duration(InitialBackoffMs) * time.Millisecond
	maxBackoff := time.Duration(MaxBackoffMs) * time.Millisecond

	for attempt := 0; attempt < MaxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if attempt < MaxRetries-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(backoff):
				backoff = time.Duration(float64(backoff) * BackoffMultiplier)
				if backoff > maxBackoff {
					backoff = maxBackoff
				}
			}
		}
	}
	return zero, lastErr
}
