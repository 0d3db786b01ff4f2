package callout

import (
	"reflect"
	"testing"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/geom"
)

func testActionConfig() ActionConfig {
	return ActionConfig{SlotWidth: 40, SlotSpacing: 4}
}

func TestActionCalloutIsActive(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	if c.IsActive() {
		t.Error("new callout should be inactive")
	}

	c.UpdateInputs(action.Character("e"), geom.Rect{W: 40, H: 40}, []string{"é", "è"})
	if !c.IsActive() {
		t.Error("callout with inputs should be active")
	}

	inputs := c.Inputs()
	want := []string{"e", "é", "è"}
	if !reflect.DeepEqual(inputs, want) {
		t.Errorf("Inputs = %v, want %v", inputs, want)
	}
	if got := c.SelectedIndex(); got != 0 {
		t.Errorf("initial selection = %d, want 0 (primary)", got)
	}
}

func TestActionCalloutInactiveWithoutInputs(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	c.UpdateInputs(action.Backspace, geom.Rect{W: 40, H: 40}, nil)
	if c.IsActive() {
		t.Error("callout with no selectable inputs should be inactive")
	}
}

func TestActionCalloutSelectionChangeFiresOncePerTransition(t *testing.T) {
	c := NewActionCallout(testActionConfig())

	var fired []string
	c.OnSelectionChanged(func(value string, index int) {
		fired = append(fired, value)
	})

	frame := geom.Rect{X: 100, Y: 0, W: 40, H: 40}
	c.UpdateInputs(action.Character("a"), frame, []string{"à", "á"})

	// Sweep within slot 0, then into slot 1 twice, then slot 2.
	c.UpdateSelection(geom.Point{X: 110, Y: 0})
	c.UpdateSelection(geom.Point{X: 120, Y: 0})
	c.UpdateSelection(geom.Point{X: 150, Y: 0})
	c.UpdateSelection(geom.Point{X: 155, Y: 0})
	c.UpdateSelection(geom.Point{X: 195, Y: 0})

	want := []string{"à", "á"}
	if !reflect.DeepEqual(fired, want) {
		t.Errorf("selection callbacks = %v, want %v", fired, want)
	}
}

func TestActionCalloutSweepIsMonotonic(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	frame := geom.Rect{X: 0, Y: 0, W: 40, H: 40}
	c.UpdateInputs(action.Character("o"), frame, []string{"ô", "ö", "ò", "ó"})

	n := len(c.Inputs())
	var visited []int
	last := -1
	// Continuous left-to-right sweep far past both ends.
	for x := -100.0; x <= 400; x += 1 {
		c.UpdateSelection(geom.Point{X: x, Y: 0})
		idx := c.SelectedIndex()
		if idx < last {
			t.Fatalf("selection decreased from %d to %d at x=%v", last, idx, x)
		}
		if idx != last {
			visited = append(visited, idx)
			last = idx
		}
	}

	wantVisited := make([]int, n)
	for i := range wantVisited {
		wantVisited[i] = i
	}
	if !reflect.DeepEqual(visited, wantVisited) {
		t.Errorf("visited slots %v, want each of %v exactly once in order", visited, wantVisited)
	}
}

func TestActionCalloutOpenEndedOuterSlots(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	frame := geom.Rect{X: 50, Y: 0, W: 40, H: 40}
	c.UpdateInputs(action.Character("u"), frame, []string{"ü"})

	c.UpdateSelection(geom.Point{X: -1000, Y: 0})
	if got := c.SelectedIndex(); got != 0 {
		t.Errorf("far-left drag selected %d, want 0", got)
	}
	c.UpdateSelection(geom.Point{X: 1000, Y: 0})
	if got := c.SelectedIndex(); got != 1 {
		t.Errorf("far-right drag selected %d, want 1", got)
	}
}

func TestActionCalloutHasAlternateSelection(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	frame := geom.Rect{X: 0, Y: 0, W: 40, H: 40}
	c.UpdateInputs(action.Character("a"), frame, []string{"à"})

	if c.HasAlternateSelection() {
		t.Error("primary selection should not count as alternate")
	}
	c.UpdateSelection(geom.Point{X: 60, Y: 0})
	if !c.HasAlternateSelection() {
		t.Error("slot 1 selection should count as alternate")
	}
	if v, ok := c.SelectedValue(); !ok || v != "à" {
		t.Errorf("SelectedValue = %q, %v", v, ok)
	}
}

func TestActionCalloutResetIsIdempotent(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	c.UpdateInputs(action.Character("a"), geom.Rect{W: 40, H: 40}, []string{"à"})
	c.UpdateSelection(geom.Point{X: 60, Y: 0})

	c.Reset()
	afterOne := snapshotActionCallout(c)
	c.Reset()
	afterTwo := snapshotActionCallout(c)

	if !reflect.DeepEqual(afterOne, afterTwo) {
		t.Errorf("second reset changed state: %+v vs %+v", afterOne, afterTwo)
	}
	if !afterOne.action.IsNone() || !afterOne.frame.IsZero() || afterOne.selected != -1 {
		t.Errorf("reset state not cleared: %+v", afterOne)
	}
}

func TestActionCalloutIgnoresSelectionWhenInactive(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	c.UpdateSelection(geom.Point{X: 10, Y: 0})
	if got := c.SelectedIndex(); got != -1 {
		t.Errorf("inactive callout selected %d, want -1", got)
	}
}

func TestActionCalloutObserverNotified(t *testing.T) {
	c := NewActionCallout(testActionConfig())
	changes := 0
	c.OnChange(func() { changes++ })

	c.UpdateInputs(action.Character("a"), geom.Rect{W: 40, H: 40}, []string{"à"})
	c.UpdateSelection(geom.Point{X: 60, Y: 0})
	c.Reset()
	c.Reset() // already reset, no notification

	if changes != 3 {
		t.Errorf("observer notified %d times, want 3", changes)
	}
}

type actionCalloutState struct {
	action   action.Action
	frame    geom.Rect
	inputs   []string
	selected int
}

func snapshotActionCallout(c *ActionCallout) actionCalloutState {
	return actionCalloutState{
		action:   c.Action(),
		frame:    c.Frame(),
		inputs:   c.Inputs(),
		selected: c.SelectedIndex(),
	}
}
