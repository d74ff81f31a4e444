package clock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSleepWithContext_Completes(t *testing.T) {
	t.Parallel()

	if err := SleepWithContext(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSleepWithContext_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := SleepWithContext(ctx, time.Minute); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSleepWithContext_ZeroDuration(t *testing.T) {
	t.Parallel()

	if err := SleepWithContext(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUTCDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2024, 3, 5, 2, 30, 0, 0, loc)

	got := UTCDay(ts)
	want := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("UTCDay = %v, want %v", got, want)
	}
}
