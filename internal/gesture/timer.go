package gesture

import (
	"sync"
	"time"
)

// RepeatTimer tracks how long the current repeat gesture has been
// running. It is a shared, externally owned time source: the platform
// layer starts and stops it, while the behavior policy only polls
// Elapsed. A stopped timer reports zero.
type RepeatTimer struct {
	mu      sync.Mutex
	start   time.Time
	running bool
	now     func() time.Time
}

// NewRepeatTimer creates a stopped timer.
func NewRepeatTimer() *RepeatTimer {
	return &RepeatTimer{now: time.Now}
}

// SetNowFunc overrides the clock, for tests.
func (t *RepeatTimer) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		t.now = fn
	}
}

// Start begins timing. Starting a running timer restarts it.
func (t *RepeatTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = t.now()
	t.running = true
}

// Stop ends timing.
func (t *RepeatTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.start = time.Time{}
}

// IsRunning returns true while the timer is started.
func (t *RepeatTimer) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Elapsed returns the duration since Start, or zero when stopped.
func (t *RepeatTimer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	return t.now().Sub(t.start)
}
