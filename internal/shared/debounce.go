package shared

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into a single invocation that fires
// after the configured quiet interval. Each call resets the timer; only the
// most recent function runs.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Do schedules fn to run after the quiet interval, replacing any pending call.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Interval returns the configured quiet interval.
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}
