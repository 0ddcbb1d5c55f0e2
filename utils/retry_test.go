package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultRetryCondition(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"rate limited", errors.New("API returned 429 too many requests"), true},
		{"service unavailable", errors.New("upstream 503 service unavailable"), true},
		{"gateway timeout", errors.New("received 504 from gateway"), true},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"bad request", errors.New("API returned 400 bad request"), false},
		{"not found", errors.New("resource not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRetryCondition(tt.err); got != tt.want {
				t.Errorf("DefaultRetryCondition(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryWithBackoffSucceedsAfterTransientFailures(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
		RetryIf:         DefaultRetryCondition,
	}

	calls := 0
	result, err := RetryWithBackoff(context.Background(), cfg, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("503 service unavailable")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q, want %q", result, "ok")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryWithBackoffStopsOnPermanentError(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      2.0,
		RetryIf:         DefaultRetryCondition,
	}

	calls := 0
	_, err := RetryWithBackoff(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, errors.New("401 unauthorized")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retries on permanent errors)", calls)
	}
}

func TestRetryWithBackoffExhaustsAttempts(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      2.0,
		RetryIf:         DefaultRetryCondition,
	}

	calls := 0
	_, err := RetryWithBackoff(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, errors.New("rate limit exceeded")
	})

	var retryErr *RetryError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected RetryError, got %T: %v", err, err)
	}
	if retryErr.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", retryErr.Attempts)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryWithBackoffHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := RetryWithBackoff(ctx, DefaultRetryConfig(), func() (int, error) {
		calls++
		return 0, errors.New("503")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}
