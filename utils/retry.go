package utils

import (
	"context"
	"fmt"
	"time"
)

// Retry calls fn up to attempts times, doubling the delay between
// failures starting from baseDelay. Returns nil on the first success.
// A cancelled context aborts the wait and returns the context error.
func Retry(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	var lastErr error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
