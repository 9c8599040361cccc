// Package debounce collapses bursts of calls into a single trailing
// invocation after a quiescence interval.
package debounce

import (
	"sync"
	"time"
)

// A Debouncer owns at most one pending timer. Do replaces the pending
// invocation; only the last call within a quiet interval fires.
type Debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
}

func New(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Do schedules fn after the quiescence interval, cancelling any
// previously pending invocation.
func (b *Debouncer) Do(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Stop cancels the pending invocation, if any.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
