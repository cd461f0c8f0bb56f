package ports

import "time"

// Scheduler runs one-shot callbacks after a delay. The application layer
// uses it for the post-submission reset so tests can drive time explicitly.
type Scheduler interface {
	// AfterFunc calls fn once, in its own goroutine, after d has elapsed.
	// Scheduled calls are not cancellable.
	AfterFunc(d time.Duration, fn func())
}
