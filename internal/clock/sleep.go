// Package clock provides context-aware time helpers.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is
// canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UTCDay truncates a timestamp to its UTC calendar day. Price lookups are
// keyed by day, so every caller must truncate the same way.
func UTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
