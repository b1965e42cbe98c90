package resilience

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"
)

// BackoffConfig describes the exponential backoff schedule used between
// synthesis attempts.
type BackoffConfig struct {
	Base time.Duration // Delay before the first retry
	Max  time.Duration // Ceiling for the computed delay
}

// DefaultBackoffConfig returns the backoff schedule used against the speech
// provider: 1s doubling up to 32s.
func DefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		Base: 1 * time.Second,
		Max:  32 * time.Second,
	}
}

// Backoff returns the delay to sleep after failed attempt k (0-indexed):
// min(Max, Base * 2^k).
func (c BackoffConfig) Backoff(attempt int) time.Duration {
	d := c.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= c.Max {
			return c.Max
		}
	}
	if d > c.Max {
		return c.Max
	}
	return d
}

// Jittered returns the backoff for attempt k plus up to 10% random jitter
// drawn from r.
func (c BackoffConfig) Jittered(attempt int, r *rand.Rand) time.Duration {
	d := c.Backoff(attempt)
	return d + time.Duration(float64(d)*0.1*r.Float64())
}

// Sleep blocks for d or until ctx is cancelled, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryableError marks an error as transient: the operation that produced it
// may be attempted again.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable
func NewRetryableError(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable checks if an error is a RetryableError
func IsRetryable(err error) bool {
	var retryableErr *RetryableError
	return errors.As(err, &retryableErr)
}

// IsRetryableNetworkError checks if an error looks like a transient transport
// failure worth retrying.
func IsRetryableNetworkError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Connection errors
	if containsAny(errStr, []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"unavailable",
		"network is unreachable",
		"no route to host",
	}) {
		return true
	}

	// Timeout errors
	if containsAny(errStr, []string{
		"deadline exceeded",
		"timeout",
		"i/o timeout",
	}) {
		return true
	}

	// Resource exhaustion (may be temporary)
	if containsAny(errStr, []string{
		"resource exhausted",
		"too many connections",
		"rate limit",
	}) {
		return true
	}

	return false
}

func containsAny(s string, substrings []string) bool {
	for _, substr := range substrings {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
