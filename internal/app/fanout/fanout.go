// Package fanout runs a function over a slice of items with bounded
// concurrency and returns per-item outcomes in input order. It backs the
// partial-success bulk operations of the application layer.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent calls.
// A maxWorkers below 1 is treated as 1.
//
// Items still waiting for a slot when ctx is canceled record ctx.Err()
// without calling fn. Calls already running finish; fn should watch ctx
// itself if it can block. Run returns once every item has a Result.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := semaphore.NewWeighted(int64(max(maxWorkers, 1)))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return
			}
			defer sem.Release(1)

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		}()
	}

	wg.Wait()
	return results
}

// Failure pairs a failed item with its error.
type Failure[T any] struct {
	Item T
	Err  error
}

// Split separates results produced by Run over items into successful values
// and failures, both in input order.
func Split[T, R any](items []T, results []Result[R]) ([]R, []Failure[T]) {
	var ok []R
	var failed []Failure[T]
	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, Failure[T]{Item: items[i], Err: r.Err})
			continue
		}
		ok = append(ok, r.Value)
	}
	return ok, failed
}
