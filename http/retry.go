package http

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// withRetry calls fn until it succeeds, making one extra attempt per delay.
// The last error is returned if every attempt fails.
func withRetry(ctx context.Context, delays []time.Duration, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
