package scenario

import (
	"context"
	"sync"
)

// fanOut calls fn for each item using at most workers goroutines and returns
// the results in input order.
//
// An item that has not started when ctx is canceled stores the value built
// by onCancel instead of calling fn. Goroutines that already hold a slot
// run to completion; fn checks ctx itself if it can stop early.
func fanOut[T, R any](
	ctx context.Context,
	workers int,
	items []T,
	fn func(context.Context, T) R,
	onCancel func(T, error) R,
) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = onCancel(item, ctx.Err())
				return
			}

			// Both select cases may have been ready.
			if err := ctx.Err(); err != nil {
				results[i] = onCancel(item, err)
				return
			}
			results[i] = fn(ctx, item)
		})
	}

	wg.Wait()
	return results
}
