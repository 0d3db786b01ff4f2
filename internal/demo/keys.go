package demo

import (
	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/callout"
	"github.com/dshills/touchkey/internal/geom"
	"github.com/dshills/touchkey/internal/gesture"
	"github.com/dshills/touchkey/internal/keyboard"
	"github.com/dshills/touchkey/internal/layout"
)

// Terminal cell geometry of the key grid and the alternate picker. The
// picker slots are sized in the same cell coordinates the mouse reports,
// so drag positions and rendered slots line up.
const (
	keyWidth   = 6
	keyHeight  = 3
	gridTop    = 4
	gridLeft   = 1
	textTop    = 1
	spaceWidth = 4 * keyWidth

	pickerSlotWidth   = 3
	pickerSlotSpacing = 1
	pickerSlotPitch   = pickerSlotWidth + pickerSlotSpacing
)

// pickerConfig returns the picker geometry in terminal cells.
func pickerConfig() callout.ActionConfig {
	return callout.ActionConfig{
		SlotWidth:   pickerSlotWidth,
		SlotSpacing: pickerSlotSpacing,
	}
}

// key is one pressable surface: its action, label, frame, and the
// dispatcher running its press lifecycle.
type key struct {
	action     action.Action
	label      string
	frame      geom.Rect
	dispatcher *gesture.Dispatcher
}

// rebuildKeys lays out the key grid for the current keyboard type and
// locale and creates a dispatcher per key.
func (a *App) rebuildKeys() {
	a.mu.Lock()
	provider := a.registry.For(a.locale)
	kbType := a.keyboardType
	tolerance := a.settings.ReleaseTolerance
	a.mu.Unlock()

	var set layout.InputSet
	switch kbType.Kind {
	case keyboard.KindNumeric:
		set = provider.NumericInputSet()
	case keyboard.KindSymbolic:
		set = provider.SymbolicInputSet()
	default:
		set = provider.AlphabeticInputSet()
	}
	upper := kbType.Case.IsUppercased()

	var keys []*key
	y := float64(gridTop)
	for _, row := range set.Rows {
		// Center each row under the widest one.
		rowWidth := len(row) * keyWidth
		x := float64(gridLeft) + float64(maxRowWidth(set.Rows)-rowWidth)/2
		for _, item := range row {
			text := item.Text(upper)
			k := &key{
				action: action.Character(text),
				label:  text,
				frame:  geom.Rect{X: x, Y: y, W: keyWidth, H: keyHeight},
			}
			if item.HasHidden() {
				k.dispatcher = a.newDispatcher(k, []string{item.HiddenText(upper)}, tolerance)
			} else {
				k.dispatcher = a.newDispatcher(k, nil, tolerance)
			}
			keys = append(keys, k)
			x += keyWidth
		}
		y += keyHeight
	}

	keys = append(keys, a.controlRow(kbType, y, tolerance)...)

	a.mu.Lock()
	a.keys = keys
	a.mu.Unlock()
}

// controlRow lays out the bottom row: shift, type switch, locale, space,
// backspace, and return.
func (a *App) controlRow(kbType keyboard.Type, y float64, tolerance float64) []*key {
	typeSwitch := action.KeyboardType(keyboard.Numeric)
	typeLabel := "123"
	if kbType.Kind != keyboard.KindAlphabetic {
		typeSwitch = action.KeyboardType(keyboard.Alphabetic(keyboard.CaseAuto))
		typeLabel = "abc"
	}
	shiftTarget := keyboard.CaseUppercased
	if kbType.Case.IsUppercased() {
		shiftTarget = keyboard.CaseLowercased
	}

	specs := []struct {
		a     action.Action
		label string
		w     float64
	}{
		{action.Shift(shiftTarget), "shift", keyWidth},
		{typeSwitch, typeLabel, keyWidth},
		{action.NextLocale, "lang", keyWidth},
		{action.Space, "space", spaceWidth},
		{action.Backspace, "del", keyWidth},
		{action.Primary(action.PrimaryReturn), "ret", keyWidth},
	}

	var keys []*key
	x := float64(gridLeft)
	for _, spec := range specs {
		k := &key{
			action: spec.a,
			label:  spec.label,
			frame:  geom.Rect{X: x, Y: y, W: spec.w, H: keyHeight},
		}
		k.dispatcher = a.newDispatcher(k, nil, tolerance)
		keys = append(keys, k)
		x += spec.w
	}
	return keys
}

// newDispatcher wires a key's gestures into the executor and the shared
// callout contexts.
func (a *App) newDispatcher(k *key, hidden []string, tolerance float64) *gesture.Dispatcher {
	d := gesture.NewDispatcher(gesture.Config{
		Action:           k.action,
		Frame:            k.frame,
		HiddenInputs:     hidden,
		ReleaseTolerance: tolerance,
		Callbacks: gesture.Callbacks{
			ReleaseInside: func(geom.Point) {
				a.perform(action.GestureRelease, k.action)
			},
			ReleaseOutside: func(geom.Point) {
				a.perform(action.GestureRelease, k.action)
			},
			Repeat: func() {
				a.perform(action.GestureRepeat, k.action)
			},
			SelectAlternate: func(value string) {
				a.perform(action.GestureRelease, action.Character(value))
			},
		},
	}, a.inputCallout, a.actionCallout, a.alternates)

	d.SetPanicHandler(func(v any, stack []byte) {
		a.log.Error("gesture callback panicked", "value", v, "stack", string(stack))
	})
	return d
}

// keyAt returns the key whose frame contains p, or nil.
func (a *App) keyAt(p geom.Point) *key {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, k := range a.keys {
		if k.frame.Contains(p) {
			return k
		}
	}
	return nil
}

func maxRowWidth(rows []layout.Row) int {
	max := 0
	for _, row := range rows {
		if w := len(row) * keyWidth; w > max {
			max = w
		}
	}
	return max
}
