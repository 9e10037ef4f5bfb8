// Package refresh drives the periodic silent reload of the current page.
package refresh

import (
	"context"
	"sync"
	"time"
)

// Timer counts elapsed seconds in the background and raises a due flag
// once the configured interval passes. The UI polls Due on its frame
// tick; reading the flag consumes it. Stopping the timer only prevents
// future reloads, it never cancels one already dispatched.
type Timer struct {
	mu       sync.Mutex
	interval int
	elapsed  int
	due      bool
	cancel   context.CancelFunc

	tick time.Duration
}

// NewTimer returns a stopped timer.
func NewTimer() *Timer {
	return &Timer{tick: time.Second}
}

// SetInterval (re)starts the one-tick-per-second loop with the given
// interval. A previous loop is stopped first.
func (t *Timer) SetInterval(seconds int) {
	t.Stop()
	if seconds <= 0 {
		return
	}

	t.mu.Lock()
	t.interval = seconds
	t.elapsed = 0
	t.due = false
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.mu.Unlock()

	go t.run(ctx)
}

// Stop halts the ticking loop and clears its state.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.interval = 0
	t.elapsed = 0
	t.due = false
}

// Due reports whether a refresh is pending and consumes the flag.
func (t *Timer) Due() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	due := t.due
	t.due = false
	return due
}

func (t *Timer) run(ctx context.Context) {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.mu.Lock()
			// The counter pauses while a refresh is waiting to be
			// drained by the UI tick.
			if !t.due {
				t.elapsed++
				if t.elapsed >= t.interval {
					t.elapsed = 0
					t.due = true
				}
			}
			t.mu.Unlock()
		}
	}
}
