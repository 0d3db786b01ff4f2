package callout

import (
	"sync"
	"time"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/geom"
)

// DefaultMinimumVisibleDuration is how long an input preview stays
// visible after a press, so that quick accidental taps still flash the
// typed character instead of flickering.
const DefaultMinimumVisibleDuration = 50 * time.Millisecond

// InputCallout shows the character a press will type. It resets either
// immediately or after a minimum-visible delay; a delayed reset is
// fenced by the last-action timestamp, so a newer press quietly cancels
// a stale scheduled reset.
type InputCallout struct {
	mu sync.Mutex

	active action.Action
	frame  geom.Rect

	lastActionTime time.Time
	minVisible     time.Duration

	now      func() time.Time
	schedule func(d time.Duration, fn func())

	observers []func()
}

// NewInputCallout creates an inactive input callout.
func NewInputCallout(minVisible time.Duration) *InputCallout {
	if minVisible <= 0 {
		minVisible = DefaultMinimumVisibleDuration
	}
	return &InputCallout{
		minVisible: minVisible,
		now:        time.Now,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// SetNowFunc overrides the clock, for tests.
func (c *InputCallout) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		c.now = fn
	}
}

// SetScheduleFunc overrides the delayed-reset scheduler, for tests.
func (c *InputCallout) SetScheduleFunc(fn func(d time.Duration, f func())) {
	if fn != nil {
		c.schedule = fn
	}
}

// OnChange registers an observer notified after any state change.
func (c *InputCallout) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// UpdateAction records the pressed action and button frame. Actions
// without input text deactivate the preview instead.
func (c *InputCallout) UpdateAction(a action.Action, frame geom.Rect) {
	c.mu.Lock()
	if a.InputText() == "" {
		c.active = action.None
		c.frame = geom.Rect{}
	} else {
		c.active = a
		c.frame = frame
	}
	c.lastActionTime = c.now()
	c.mu.Unlock()

	c.notify()
}

// IsActive returns true while a preview is showing.
func (c *InputCallout) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.active.IsNone()
}

// Action returns the previewed action.
func (c *InputCallout) Action() action.Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Input returns the text the previewed action will type.
func (c *InputCallout) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active.InputText()
}

// Frame returns the pressed button's frame.
func (c *InputCallout) Frame() geom.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Reset clears the preview immediately.
func (c *InputCallout) Reset() {
	c.mu.Lock()
	wasActive := !c.active.IsNone()
	c.resetLocked()
	c.mu.Unlock()

	if wasActive {
		c.notify()
	}
}

// ResetWithDelay clears the preview once it has been visible for the
// minimum duration. The reset runs immediately when the preview is old
// enough; otherwise it is scheduled for the remaining time and skipped
// if a newer action has been recorded by then.
func (c *InputCallout) ResetWithDelay() {
	c.mu.Lock()
	fence := c.lastActionTime
	remaining := c.minVisible - c.now().Sub(fence)
	c.mu.Unlock()

	if remaining <= 0 {
		c.Reset()
		return
	}

	c.schedule(remaining, func() {
		c.mu.Lock()
		if !c.lastActionTime.Equal(fence) {
			// A newer interaction started; this reset is stale.
			c.mu.Unlock()
			return
		}
		wasActive := !c.active.IsNone()
		c.resetLocked()
		c.mu.Unlock()

		if wasActive {
			c.notify()
		}
	})
}

// resetLocked clears action and frame. Called with c.mu held.
func (c *InputCallout) resetLocked() {
	c.active = action.None
	c.frame = geom.Rect{}
}

func (c *InputCallout) notify() {
	c.mu.Lock()
	observers := make([]func(), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}
