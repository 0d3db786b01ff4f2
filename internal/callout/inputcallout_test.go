package callout

import (
	"testing"
	"time"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/geom"
)

// manualClock is a settable time source.
type manualClock struct {
	t time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Unix(1000, 0)}
}

func (c *manualClock) now() time.Time { return c.t }

func (c *manualClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestInputCalloutUpdateAndReset(t *testing.T) {
	c := NewInputCallout(50 * time.Millisecond)
	frame := geom.Rect{X: 10, Y: 10, W: 40, H: 40}

	c.UpdateAction(action.Character("a"), frame)
	if !c.IsActive() {
		t.Fatal("callout should be active after update")
	}
	if got := c.Input(); got != "a" {
		t.Errorf("Input = %q, want a", got)
	}
	if got := c.Frame(); got != frame {
		t.Errorf("Frame = %+v, want %+v", got, frame)
	}

	c.Reset()
	if c.IsActive() {
		t.Error("callout should be inactive after reset")
	}
	if !c.Frame().IsZero() {
		t.Error("frame should be zero after reset")
	}
}

func TestInputCalloutIgnoresNonInputActions(t *testing.T) {
	c := NewInputCallout(50 * time.Millisecond)
	c.UpdateAction(action.Shift(0), geom.Rect{W: 40, H: 40})
	if c.IsActive() {
		t.Error("shift has no input text and should not show a preview")
	}
}

func TestInputCalloutDelayedResetRunsImmediatelyWhenOldEnough(t *testing.T) {
	clock := newManualClock()
	c := NewInputCallout(50 * time.Millisecond)
	c.SetNowFunc(clock.now)

	scheduled := false
	c.SetScheduleFunc(func(d time.Duration, fn func()) { scheduled = true })

	c.UpdateAction(action.Character("a"), geom.Rect{W: 40, H: 40})
	clock.advance(60 * time.Millisecond)
	c.ResetWithDelay()

	if scheduled {
		t.Error("reset past the minimum-visible duration should not be scheduled")
	}
	if c.IsActive() {
		t.Error("callout should have reset immediately")
	}
}

func TestInputCalloutDelayedResetIsFenced(t *testing.T) {
	clock := newManualClock()
	c := NewInputCallout(50 * time.Millisecond)
	c.SetNowFunc(clock.now)

	var pending []func()
	c.SetScheduleFunc(func(d time.Duration, fn func()) {
		if d <= 0 || d > 50*time.Millisecond {
			t.Errorf("scheduled delay = %v, want within (0, 50ms]", d)
		}
		pending = append(pending, fn)
	})

	c.UpdateAction(action.Character("a"), geom.Rect{W: 40, H: 40})
	clock.advance(10 * time.Millisecond)
	c.ResetWithDelay()
	if len(pending) != 1 {
		t.Fatalf("pending resets = %d, want 1", len(pending))
	}

	// A newer interaction starts before the scheduled reset fires; the
	// stale reset must be a no-op.
	clock.advance(5 * time.Millisecond)
	c.UpdateAction(action.Character("b"), geom.Rect{W: 40, H: 40})
	pending[0]()

	if !c.IsActive() {
		t.Error("stale scheduled reset cleared a newer interaction")
	}
	if got := c.Input(); got != "b" {
		t.Errorf("Input = %q, want b", got)
	}
}

func TestInputCalloutDelayedResetFiresWhenStillCurrent(t *testing.T) {
	clock := newManualClock()
	c := NewInputCallout(50 * time.Millisecond)
	c.SetNowFunc(clock.now)

	var pending []func()
	c.SetScheduleFunc(func(d time.Duration, fn func()) { pending = append(pending, fn) })

	c.UpdateAction(action.Character("a"), geom.Rect{W: 40, H: 40})
	clock.advance(10 * time.Millisecond)
	c.ResetWithDelay()
	if len(pending) != 1 {
		t.Fatalf("pending resets = %d, want 1", len(pending))
	}

	pending[0]()
	if c.IsActive() {
		t.Error("scheduled reset should have cleared the callout")
	}
}

func TestInputCalloutObserverNotified(t *testing.T) {
	c := NewInputCallout(50 * time.Millisecond)
	changes := 0
	c.OnChange(func() { changes++ })

	c.UpdateAction(action.Character("a"), geom.Rect{W: 40, H: 40})
	c.Reset()
	c.Reset() // already reset, no notification

	if changes != 2 {
		t.Errorf("observer notified %d times, want 2", changes)
	}
}
