// Package timer provides the wall-clock implementation of ports.Scheduler.
package timer

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// Compile-time interface check.
var _ ports.Scheduler = (*Scheduler)(nil)

// Scheduler runs callbacks on runtime timers. A panicking callback is logged
// and swallowed so one bad reset cannot take the process down.
type Scheduler struct {
	logger  *slog.Logger
	pending atomic.Int64
}

// New creates a Scheduler. A nil logger discards logs.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{logger: logger}
}

// AfterFunc calls fn once in its own goroutine after d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending.Add(1)
	time.AfterFunc(d, func() {
		defer s.pending.Add(-1)
		defer func() {
			if v := recover(); v != nil {
				s.logger.Error("scheduled callback panicked",
					slog.Any("panic", v),
					slog.Duration("delay", d),
				)
			}
		}()
		fn()
	})
}

// Pending reports how many callbacks are scheduled or running.
func (s *Scheduler) Pending() int {
	return int(s.pending.Load())
}
