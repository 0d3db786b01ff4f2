// Package gesture owns the interaction lifecycle of one pressable key
// surface. A Dispatcher turns raw press/drag/release samples into
// recognized gestures, routes them to registered callbacks, and feeds
// the input-preview and alternate-selection callout contexts.
package gesture

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/callout"
	"github.com/dshills/touchkey/internal/dispatch"
	"github.com/dshills/touchkey/internal/geom"
)

// DefaultReleaseTolerance is the fraction of the button's size, per
// dimension, by which its frame is expanded when deciding whether an
// outside release still counts for the button.
const DefaultReleaseTolerance = 0.75

// State is the dispatcher's position in the press lifecycle. DoubleTap
// and the two release variants are transition events, not held states.
type State uint8

const (
	// StateIdle means no press session is active.
	StateIdle State = iota
	// StatePressed means a press session has started.
	StatePressed
	// StateLongPressed means the press was held past the long-press delay.
	StateLongPressed
	// StateDragging means the pointer moved during the press.
	StateDragging
	// StateRepeating means repeat ticks are firing.
	StateRepeating
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StateLongPressed:
		return "longPressed"
	case StateDragging:
		return "dragging"
	case StateRepeating:
		return "repeating"
	default:
		return "idle"
	}
}

// Callbacks are the registration points for recognized gestures. Every
// field is optional; unregistered events are simply not dispatched.
type Callbacks struct {
	// Press fires on touch-down.
	Press func(p geom.Point)

	// ReleaseInside fires on a release within the button bounds.
	ReleaseInside func(p geom.Point)

	// ReleaseOutside fires on an honored release outside the bounds.
	ReleaseOutside func(p geom.Point)

	// LongPress fires once when the press crosses the long-press delay.
	LongPress func(p geom.Point)

	// DoubleTap fires when the platform layer detects two presses
	// within its double-tap window.
	DoubleTap func()

	// Repeat fires on each repeat tick while the key is held.
	Repeat func()

	// Drag fires on pointer movement while no alternate picker is open.
	Drag func(from, to geom.Point)

	// SelectAlternate fires instead of the release callback when a drag
	// picked a non-default alternate character.
	SelectAlternate func(value string)

	// End fires exactly once when the session concludes, whichever
	// branch it took.
	End func()
}

// Config configures a Dispatcher for one button.
type Config struct {
	// Action is the button's keyboard action.
	Action action.Action

	// Frame is the button's frame in the keyboard coordinate space.
	Frame geom.Rect

	// HiddenInputs are the characters hidden behind the key, offered as
	// drag-selectable candidates alongside the provider's alternates.
	HiddenInputs []string

	// ReleaseTolerance overrides DefaultReleaseTolerance when > 0.
	ReleaseTolerance float64

	// Callbacks are the gesture callbacks.
	Callbacks Callbacks
}

// Dispatcher runs the press lifecycle of a single button. Exactly one
// press session is active at a time; a second press during a session is
// ignored.
type Dispatcher struct {
	mu     sync.Mutex
	config Config

	alternates    callout.AlternatesProvider
	inputCallout  *callout.InputCallout
	actionCallout *callout.ActionCallout

	state     State
	sessionID string
	released  bool

	onPanic dispatch.PanicHandler
}

// NewDispatcher creates a dispatcher wired to the given callout
// contexts. Both contexts and the alternates provider may be nil for
// buttons that never show callouts.
func NewDispatcher(config Config, input *callout.InputCallout, ac *callout.ActionCallout, alternates callout.AlternatesProvider) *Dispatcher {
	if config.ReleaseTolerance <= 0 {
		config.ReleaseTolerance = DefaultReleaseTolerance
	}
	return &Dispatcher{
		config:        config,
		alternates:    alternates,
		inputCallout:  input,
		actionCallout: ac,
		state:         StateIdle,
	}
}

// SetPanicHandler registers a handler for panicking callbacks.
func (d *Dispatcher) SetPanicHandler(fn dispatch.PanicHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onPanic = fn
}

// State returns the current lifecycle state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// SessionID returns the id of the active press session, or "".
func (d *Dispatcher) SessionID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sessionID
}

// Action returns the button's action.
func (d *Dispatcher) Action() action.Action {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config.Action
}

// Frame returns the button's frame.
func (d *Dispatcher) Frame() geom.Rect {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config.Frame
}

// SetFrame updates the button's frame, typically after a layout pass.
func (d *Dispatcher) SetFrame(frame geom.Rect) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.config.Frame = frame
}

// Press starts a press session. Presses during an active session are
// ignored.
func (d *Dispatcher) Press(p geom.Point) {
	d.mu.Lock()
	if d.state != StateIdle {
		d.mu.Unlock()
		return
	}
	d.state = StatePressed
	d.sessionID = uuid.NewString()
	d.released = false
	cb := d.config.Callbacks.Press
	a := d.config.Action
	frame := d.config.Frame
	d.mu.Unlock()

	d.invoke(func() {
		if cb != nil {
			cb(p)
		}
	})
	if d.inputCallout != nil {
		d.inputCallout.UpdateAction(a, frame)
	}
}

// LongPress marks the session long-pressed and opens the alternate
// picker when the action has alternates or the key hides characters.
// It is only valid from the pressed state; once the pointer has moved
// the session stays a drag.
func (d *Dispatcher) LongPress(p geom.Point) {
	d.mu.Lock()
	if d.state != StatePressed {
		d.mu.Unlock()
		return
	}
	d.state = StateLongPressed
	cb := d.config.Callbacks.LongPress
	a := d.config.Action
	frame := d.config.Frame
	hidden := d.config.HiddenInputs
	d.mu.Unlock()

	d.invoke(func() {
		if cb != nil {
			cb(p)
		}
	})

	if d.actionCallout == nil {
		return
	}
	var candidates []string
	if d.alternates != nil {
		candidates = d.alternates.Alternates(a)
	}
	candidates = append(candidates, hidden...)
	if len(candidates) == 0 {
		return
	}
	d.actionCallout.UpdateInputs(a, frame, candidates)
}

// DoubleTap forwards a platform-detected double tap. It is independent
// of hold duration and valid outside a press session.
func (d *Dispatcher) DoubleTap() {
	d.mu.Lock()
	cb := d.config.Callbacks.DoubleTap
	d.mu.Unlock()

	d.invoke(func() {
		if cb != nil {
			cb()
		}
	})
}

// RepeatTick fires one repeat. The repeat threshold and interval are
// owned by the external repeat timer, not this component.
func (d *Dispatcher) RepeatTick() {
	d.mu.Lock()
	if d.state == StateIdle {
		d.mu.Unlock()
		return
	}
	d.state = StateRepeating
	cb := d.config.Callbacks.Repeat
	d.mu.Unlock()

	d.invoke(func() {
		if cb != nil {
			cb()
		}
	})
}

// Drag routes pointer movement. While the alternate picker is open the
// movement updates its selection; otherwise the generic drag callback
// fires.
func (d *Dispatcher) Drag(from, to geom.Point) {
	d.mu.Lock()
	if d.state == StateIdle {
		d.mu.Unlock()
		return
	}
	if d.state == StatePressed {
		d.state = StateDragging
	}
	cb := d.config.Callbacks.Drag
	d.mu.Unlock()

	if d.actionCallout != nil && d.actionCallout.IsActive() {
		d.actionCallout.UpdateSelection(to)
		return
	}

	d.invoke(func() {
		if cb != nil {
			cb(from, to)
		}
	})
}

// ReleaseInside concludes the press with a release inside the button
// bounds. At most one release fires per session.
func (d *Dispatcher) ReleaseInside(p geom.Point) {
	d.release(p, true)
}

// ReleaseOutside concludes the press with a release outside the button
// bounds. The release is honored only when the point lies within the
// tolerance-expanded frame, or an alternate selection is active (the
// finger is expected to leave the key while selecting).
func (d *Dispatcher) ReleaseOutside(p geom.Point) {
	d.release(p, false)
}

func (d *Dispatcher) release(p geom.Point, inside bool) {
	d.mu.Lock()
	if d.state == StateIdle || d.released {
		d.mu.Unlock()
		return
	}
	d.released = true

	selecting := d.actionCallout != nil && d.actionCallout.HasAlternateSelection()
	if !inside {
		honored := d.config.Frame.Expanded(d.config.ReleaseTolerance).Contains(p) || selecting
		if !honored {
			d.mu.Unlock()
			return
		}
	}

	if selecting {
		// The drag picked an alternate; the default release action does
		// not fire. The released flag above keeps any further release
		// sample in this session from firing either.
		cb := d.config.Callbacks.SelectAlternate
		value, ok := d.actionCallout.SelectedValue()
		d.mu.Unlock()

		d.invoke(func() {
			if cb != nil && ok {
				cb(value)
			}
		})
		return
	}

	var cb func(geom.Point)
	if inside {
		cb = d.config.Callbacks.ReleaseInside
	} else {
		cb = d.config.Callbacks.ReleaseOutside
	}
	d.mu.Unlock()

	d.invoke(func() {
		if cb != nil {
			cb(p)
		}
	})
}

// End concludes the session. It always runs regardless of which release
// branch fired: transient flags clear, the input preview resets after
// its minimum-visible delay, and the alternate picker resets
// immediately. Ending an idle dispatcher is a no-op.
func (d *Dispatcher) End() {
	d.mu.Lock()
	if d.state == StateIdle {
		d.mu.Unlock()
		return
	}
	d.state = StateIdle
	d.sessionID = ""
	d.released = false
	cb := d.config.Callbacks.End
	d.mu.Unlock()

	d.invoke(func() {
		if cb != nil {
			cb()
		}
	})

	if d.inputCallout != nil {
		d.inputCallout.ResetWithDelay()
	}
	if d.actionCallout != nil {
		d.actionCallout.Reset()
	}
}

// invoke runs a callback with panic recovery.
func (d *Dispatcher) invoke(fn func()) {
	result := dispatch.Invoke(fn)
	if result.Panicked {
		d.mu.Lock()
		handler := d.onPanic
		d.mu.Unlock()
		if handler != nil {
			handler(result.PanicValue, result.PanicStack)
		}
	}
}
