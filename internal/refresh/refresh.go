// Package refresh coalesces ledger change notifications so a burst of
// mutations triggers one presentation recompute instead of many.
package refresh

import (
	"sync"
	"time"
)

// Debouncer runs fn once a quiet period elapses after the most recent
// Changed call. The ledger is already consistent when Changed fires,
// so delaying or dropping a refresh never affects correctness.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a Debouncer with the given quiet period.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Changed restarts the quiet period.
func (d *Debouncer) Changed() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Flush cancels any pending timer and runs fn immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.fn()
}

// Stop cancels any pending refresh without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
