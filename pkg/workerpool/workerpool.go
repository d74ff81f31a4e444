// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result pairs one work item with its outcome.
type Result[T, R any] struct {
	Item T
	Out  R
	Err  error
}

// Collect runs fn over items with bounded parallelism and returns one result
// per item in input order. A failing item records its error and the pool
// keeps going; only context cancellation stops the run early, in which case
// the remaining items carry the context error.
func Collect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[T, R] {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	results := make([]Result[T, R], len(items))
	for i, item := range items {
		results[i].Item = item
	}

	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				if err := ctx.Err(); err != nil {
					results[idx].Err = err
					continue
				}
				out, err := fn(ctx, results[idx].Item)
				results[idx].Out = out
				results[idx].Err = err
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
