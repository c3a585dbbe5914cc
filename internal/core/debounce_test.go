// AngelaMos | 2026
// debounce_test.go

package core

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { runs.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if got := runs.Load(); got != 1 {
		t.Fatalf("runs = %d, want burst to coalesce into 1", got)
	}
}

func TestDebouncerLastTriggerWins(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var value atomic.Int32
	d.Trigger(func() { value.Store(1) })
	d.Trigger(func() { value.Store(2) })
	d.Trigger(func() { value.Store(3) })

	time.Sleep(100 * time.Millisecond)

	if got := value.Load(); got != 3 {
		t.Fatalf("value = %d, want the last scheduled function", got)
	}
}

func TestDebouncerSeparatedTriggersEachRun(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	time.Sleep(50 * time.Millisecond)
	d.Trigger(func() { runs.Add(1) })
	time.Sleep(50 * time.Millisecond)

	if got := runs.Load(); got != 2 {
		t.Fatalf("runs = %d, want 2 for triggers outside the window", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	if got := runs.Load(); got != 0 {
		t.Fatalf("runs = %d, want pending invocation cancelled", got)
	}
}
