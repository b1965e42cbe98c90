package resilience

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestBackoff_Exponential(t *testing.T) {
	cfg := BackoffConfig{Base: 1 * time.Second, Max: 32 * time.Second}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 32 * time.Second},
		{6, 32 * time.Second}, // Capped at max
		{10, 32 * time.Second},
	}

	for _, tt := range tests {
		got := cfg.Backoff(tt.attempt)
		if got != tt.expected {
			t.Errorf("Backoff(%d): expected %v, got %v", tt.attempt, tt.expected, got)
		}
	}
}

func TestBackoff_NonDecreasing(t *testing.T) {
	cfg := DefaultBackoffConfig()
	prev := time.Duration(0)
	for attempt := 0; attempt < 10; attempt++ {
		d := cfg.Backoff(attempt)
		if d < prev {
			t.Errorf("Backoff decreased at attempt %d: %v < %v", attempt, d, prev)
		}
		prev = d
	}
}

func TestJittered_Bounds(t *testing.T) {
	cfg := BackoffConfig{Base: 1 * time.Second, Max: 32 * time.Second}
	r := rand.New(rand.NewSource(42))

	for attempt := 0; attempt < 6; attempt++ {
		base := cfg.Backoff(attempt)
		for i := 0; i < 50; i++ {
			d := cfg.Jittered(attempt, r)
			if d < base {
				t.Fatalf("Jittered(%d) below base: %v < %v", attempt, d, base)
			}
			if d > base+time.Duration(float64(base)*0.1) {
				t.Fatalf("Jittered(%d) above 10%% jitter: %v for base %v", attempt, d, base)
			}
		}
	}
}

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, 5*time.Second)
	if err == nil {
		t.Error("Expected context error from cancelled Sleep")
	}
	if time.Since(start) > 1*time.Second {
		t.Error("Sleep did not return promptly after cancellation")
	}
}

func TestSleep_Completes(t *testing.T) {
	err := Sleep(context.Background(), 5*time.Millisecond)
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestIsRetryableNetworkError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"connection refused", errors.New("connection refused"), true},
		{"connection reset", errors.New("connection reset"), true},
		{"unavailable", errors.New("unavailable"), true},
		{"deadline exceeded", errors.New("deadline exceeded"), true},
		{"timeout", errors.New("timeout"), true},
		{"resource exhausted", errors.New("resource exhausted"), true},
		{"rate limit", errors.New("rate limit"), true},
		{"other error", errors.New("other error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsRetryableNetworkError(tt.err)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestNewRetryableError(t *testing.T) {
	originalErr := errors.New("original error")
	retryableErr := NewRetryableError(originalErr)

	if retryableErr.Error() != "original error" {
		t.Errorf("Expected error message 'original error', got %s", retryableErr.Error())
	}

	if !IsRetryable(retryableErr) {
		t.Error("Expected error to be retryable")
	}

	if IsRetryable(originalErr) {
		t.Error("Expected original error to not be retryable")
	}

	if NewRetryableError(nil) != nil {
		t.Error("Expected nil for nil input")
	}
}
