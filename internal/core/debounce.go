// AngelaMos | 2026
// debounce.go

package core

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single delayed invocation.
// Every call to Trigger cancels the previously scheduled function, so
// only the last trigger in a burst runs. Last-trigger-wins is a
// correctness requirement for callers, not an optimization: a missed
// cancellation would leave multiple stale invocations racing each other.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the debounce delay, cancelling any
// previously scheduled function that has not fired yet.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation. It does not wait for a function
// that has already started running.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
