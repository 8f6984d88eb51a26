// Package retry provides a reusable retry combinator with exponential backoff.
// It is shared by every external-call site that needs bounded retries, rather
// than each site carrying its own loop.
package retry

import (
	"context"
	"time"
)

// Policy controls how Do retries a failing operation.
type Policy struct {
	// MaxAttempts is the total attempt budget, including the first call.
	MaxAttempts int
	// InitialDelay is the backoff before the first retry. Each subsequent
	// retry doubles the previous delay.
	InitialDelay time.Duration
	// Retryable reports whether an error is worth retrying. A nil predicate
	// retries every error.
	Retryable func(error) bool

	// sleep is swapped out in tests. Nil means context-aware time.Sleep.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy matches the vector-search retry budget: 3 attempts with
// 1s then 2s backoff between retryable failures.
func DefaultPolicy(retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		Retryable:    retryable,
	}
}

// Do runs fn until it succeeds, fails with a non-retryable error, the attempt
// budget is exhausted, or ctx is done. Backoff sleeps only happen between
// retryable failures, never after the final attempt.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	delay := p.InitialDelay
	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == p.MaxAttempts-1 {
			break
		}

		if err := sleep(ctx, delay); err != nil {
			return err
		}
		delay *= 2
	}
	return lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
