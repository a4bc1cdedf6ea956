package playback

import (
	"sync"
	"time"
)

// DefaultThrottleInterval caps streamed frames at roughly 30 per second.
const DefaultThrottleInterval = 33 * time.Millisecond

// Throttle is a minimum-interval gate: Allow passes at most once per interval.
type Throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewThrottle builds a gate. A non-positive interval falls back to the default.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = DefaultThrottleInterval
	}
	return &Throttle{interval: interval, now: time.Now}
}

// Interval reports the configured minimum gap.
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Allow reports whether at least one interval has passed since the last pass
// and, if so, starts a new interval.
func (t *Throttle) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Mark starts a new interval without checking the gate.
func (t *Throttle) Mark() {
	t.mu.Lock()
	t.last = t.now()
	t.mu.Unlock()
}
