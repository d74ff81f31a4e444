package workerpool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

func TestCollect_PreservesOrder(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	results := Collect(context.Background(), 3, items, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})

	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("item %d returned error: %v", i, r.Err)
		}
		if r.Out != items[i]*10 {
			t.Fatalf("result %d = %d, want %d", i, r.Out, items[i]*10)
		}
	}
}

func TestCollect_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	items := []int{0, 1, 2, 3}
	results := Collect(context.Background(), 2, items, func(_ context.Context, n int) (string, error) {
		if n%2 == 1 {
			return "", wantErr
		}
		return fmt.Sprintf("ok-%d", n), nil
	})

	for i, r := range results {
		if i%2 == 1 {
			if !errors.Is(r.Err, wantErr) {
				t.Fatalf("item %d: expected error, got %v", i, r.Err)
			}
			continue
		}
		if r.Err != nil || r.Out != fmt.Sprintf("ok-%d", i) {
			t.Fatalf("item %d: unexpected result %q err %v", i, r.Out, r.Err)
		}
	}
}

func TestCollect_CancellationMarksRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var processed atomic.Int32
	items := make([]int, 50)
	results := Collect(ctx, 1, items, func(ctx context.Context, _ int) (int, error) {
		if processed.Add(1) == 3 {
			cancel()
		}
		return 0, ctx.Err()
	})

	var canceled int
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Fatal("expected canceled items after cancel")
	}
	if int(processed.Load()) == len(items) {
		t.Fatal("expected the pool to stop invoking fn after cancellation")
	}
}

func TestCollect_ZeroWorkers(t *testing.T) {
	t.Parallel()

	results := Collect(context.Background(), 0, []int{42}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	if len(results) != 1 || results[0].Out != 42 {
		t.Fatalf("unexpected results: %+v", results)
	}
}
