package callout

import (
	"sync"
	"time"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/geom"
)

// ActionConfig configures the geometry of the alternate-character picker.
type ActionConfig struct {
	// SlotWidth is the rendered width of one selection slot.
	SlotWidth float64

	// SlotSpacing is the spacing between adjacent slots. Half of it is
	// folded into each slot's selection bounds.
	SlotSpacing float64
}

// DefaultActionConfig returns the default picker geometry.
func DefaultActionConfig() ActionConfig {
	return ActionConfig{
		SlotWidth:   44,
		SlotSpacing: 2,
	}
}

// ActionCallout maps a horizontal drag onto a discrete selection among
// the primary input and its alternates. The selection-changed callback
// fires exactly once per transition; re-entering the current slot does
// not re-fire it.
type ActionCallout struct {
	mu     sync.Mutex
	config ActionConfig

	active   action.Action
	frame    geom.Rect
	inputs   []string
	selected int

	lastActionTime time.Time
	now            func() time.Time

	onSelectionChanged func(value string, index int)
	observers          []func()
}

// NewActionCallout creates an inactive callout with the given config.
func NewActionCallout(config ActionConfig) *ActionCallout {
	return &ActionCallout{
		config:   config,
		selected: -1,
		now:      time.Now,
	}
}

// SetNowFunc overrides the clock, for tests.
func (c *ActionCallout) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		c.now = fn
	}
}

// OnSelectionChanged registers the callback invoked when the drag
// selection moves to a different slot.
func (c *ActionCallout) OnSelectionChanged(fn func(value string, index int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSelectionChanged = fn
}

// OnChange registers an observer notified after any state change.
func (c *ActionCallout) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// UpdateInputs activates the callout for the given action and button
// frame. The selectable candidates are the action's primary input
// followed by the alternates; the primary starts selected.
func (c *ActionCallout) UpdateInputs(a action.Action, frame geom.Rect, alternates []string) {
	c.mu.Lock()
	inputs := make([]string, 0, len(alternates)+1)
	if primary := a.InputText(); primary != "" {
		inputs = append(inputs, primary)
	}
	inputs = append(inputs, alternates...)

	c.active = a
	c.frame = frame
	c.inputs = inputs
	c.selected = 0
	if len(inputs) == 0 {
		c.selected = -1
	}
	c.lastActionTime = c.now()
	c.mu.Unlock()

	c.notify()
}

// UpdateSelection maps a drag position onto a slot and records the
// selection. The position is interpreted relative to the origin of the
// pressed button. Inactive callouts ignore the update.
func (c *ActionCallout) UpdateSelection(p geom.Point) {
	c.mu.Lock()
	if !c.isActiveLocked() {
		c.mu.Unlock()
		return
	}

	x := p.X - c.frame.X
	idx := c.slotIndex(x)
	if idx == c.selected {
		c.mu.Unlock()
		return
	}
	c.selected = idx
	c.lastActionTime = c.now()
	value := c.inputs[idx]
	fn := c.onSelectionChanged
	c.mu.Unlock()

	if fn != nil {
		fn(value, idx)
	}
	c.notify()
}

// slotIndex returns the slot the x offset selects. Each candidate
// occupies an equal-width slot whose bounds are its own box widened by
// half the inter-slot spacing; the first and last slots are open-ended
// outward so a selection is always defined. Called with c.mu held.
func (c *ActionCallout) slotIndex(x float64) int {
	last := len(c.inputs) - 1
	pitch := c.config.SlotWidth + c.config.SlotSpacing
	for i := range c.inputs {
		lower := float64(i)*pitch - c.config.SlotSpacing/2
		upper := float64(i)*pitch + c.config.SlotWidth + c.config.SlotSpacing/2
		if (i == 0 || x >= lower) && (i == last || x < upper) {
			return i
		}
	}
	return last
}

// IsActive returns true when an action is set and it has at least one
// selectable input.
func (c *ActionCallout) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isActiveLocked()
}

func (c *ActionCallout) isActiveLocked() bool {
	return !c.active.IsNone() && len(c.inputs) > 0
}

// Action returns the action the callout is open for.
func (c *ActionCallout) Action() action.Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Frame returns the pressed button's frame.
func (c *ActionCallout) Frame() geom.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Inputs returns the selectable candidates, primary first.
func (c *ActionCallout) Inputs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.inputs...)
}

// SelectedIndex returns the selected slot index, or -1 when inactive.
func (c *ActionCallout) SelectedIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// SelectedValue returns the selected candidate, if any.
func (c *ActionCallout) SelectedValue() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected < 0 || c.selected >= len(c.inputs) {
		return "", false
	}
	return c.inputs[c.selected], true
}

// HasAlternateSelection returns true when the drag selected a candidate
// other than the default primary input.
func (c *ActionCallout) HasAlternateSelection() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isActiveLocked() && c.selected > 0
}

// Reset clears the action, frame, and selection together. Resetting an
// already-reset callout is a no-op.
func (c *ActionCallout) Reset() {
	c.mu.Lock()
	wasActive := c.isActiveLocked()
	c.active = action.None
	c.frame = geom.Rect{}
	c.inputs = nil
	c.selected = -1
	c.mu.Unlock()

	if wasActive {
		c.notify()
	}
}

func (c *ActionCallout) notify() {
	c.mu.Lock()
	observers := make([]func(), len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}
