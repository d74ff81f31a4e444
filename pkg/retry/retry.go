// Package retry implements a bounded exponential backoff policy shared by
// all external calls.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/arenawatch/arenawatch-backend/internal/clock"
)

// Class decides how an error is handled.
type Class int

const (
	// Transient errors are retried until the attempt budget runs out.
	Transient Class = iota
	// Permanent errors abort immediately.
	Permanent
)

// Policy describes the retry behavior for one category of external call.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      time.Duration

	// Classify decides whether an error is transient. Nil retries every
	// non-nil error.
	Classify func(error) Class

	// OnRetry is an optional hook for logging.
	OnRetry func(attempt int, wait time.Duration, err error)
}

// DefaultPolicy is the policy applied to explorer and oracle calls unless
// overridden by configuration.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 4,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    5 * time.Second,
		Jitter:      100 * time.Millisecond,
	}
}

// Do runs fn under the policy. The last error is returned once the attempt
// budget is exhausted or a permanent error is seen. Context cancellation is
// honored before every attempt and during backoff waits.
func Do(ctx context.Context, p Policy, fn func(context.Context) error) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = 100 * time.Millisecond
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 5 * time.Second
	}

	classify := p.Classify
	if classify == nil {
		classify = func(error) Class { return Transient }
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if classify(err) == Permanent {
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}

		wait := p.BaseDelay << (attempt - 1)
		if wait > p.MaxDelay {
			wait = p.MaxDelay
		}
		if p.Jitter > 0 {
			wait += time.Duration(rand.Int63n(int64(p.Jitter)))
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, wait, err)
		}

		if err := clock.SleepWithContext(ctx, wait); err != nil {
			return err
		}
	}

	if lastErr == nil {
		lastErr = errors.New("retry: no attempts executed")
	}
	return lastErr
}
