package demo

import (
	"strings"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/behavior"
	"github.com/dshills/touchkey/internal/keyboard"
)

// currentPolicy returns the policy under the lock; reloads swap it.
func (a *App) currentPolicy() *behavior.StandardPolicy {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.policy
}

// perform carries a recognized gesture's action out against the demo's
// text buffer and keyboard state. It is the demo's executor; hosts
// embedding the core supply their own.
func (a *App) perform(g action.Gesture, act action.Action) {
	switch act.Kind {
	case action.KindCharacter, action.KindEmoji, action.KindSpace, action.KindNewLine:
		a.insert(g, act)
	case action.KindBackspace:
		a.backspace()
	case action.KindShift:
		a.shift(g, act)
	case action.KindKeyboardType:
		a.switchType(act.Keyboard)
	case action.KindNextLocale:
		a.nextLocale()
	case action.KindPrimary:
		a.insert(g, action.NewLine)
	case action.KindDismiss:
		a.Shutdown()
	case action.KindCustom:
		a.custom(g, act)
	}
	a.requestRedraw()
}

// insert appends the action's text, applies end-of-sentence replacement,
// and settles the keyboard type afterwards.
func (a *App) insert(g action.Gesture, act action.Action) {
	a.mu.Lock()
	a.text += act.InputText()
	ctx := a.contextLocked()
	a.mu.Unlock()

	if a.currentPolicy().ShouldEndSentence(ctx, g, act) {
		a.mu.Lock()
		a.text = strings.TrimSuffix(a.text, "  ") + ". "
		ctx = a.contextLocked()
		a.mu.Unlock()
	}

	a.settleType(ctx, g, act)
}

// backspace deletes one character, or one word after a sustained repeat.
func (a *App) backspace() {
	r := a.currentPolicy().BackspaceRange()

	a.mu.Lock()
	if n := behavior.TrailingDeletionLength(a.text, r); n > 0 {
		a.text = a.text[:len(a.text)-n]
	}
	a.mu.Unlock()
}

// shift toggles casing, escalating to caps lock on a double tap.
func (a *App) shift(g action.Gesture, act action.Action) {
	ctx := a.context()
	next := a.currentPolicy().PreferredKeyboardType(ctx, g, act)

	a.mu.Lock()
	switch {
	case next.Case == keyboard.CaseCapsLocked:
		a.keyboardType = next
	case a.keyboardType.Case.IsUppercased():
		a.keyboardType = keyboard.Alphabetic(keyboard.CaseLowercased)
	default:
		a.keyboardType = keyboard.Alphabetic(keyboard.CaseUppercased)
	}
	a.mu.Unlock()

	a.rebuildKeys()
}

// settleType applies the policy's post-action keyboard type, dropping a
// one-shot shift back to lowercase after a character.
func (a *App) settleType(ctx keyboard.Snapshot, g action.Gesture, act action.Action) {
	next := a.currentPolicy().PreferredKeyboardType(ctx, g, act)

	a.mu.Lock()
	if a.keyboardType.Case == keyboard.CaseUppercased && act.Kind == action.KindCharacter {
		next = keyboard.Alphabetic(keyboard.CaseLowercased)
	}
	changed := next != a.keyboardType
	a.keyboardType = next
	a.mu.Unlock()

	if changed {
		a.rebuildKeys()
	}
}

// switchType changes the displayed keyboard type.
func (a *App) switchType(t keyboard.Type) {
	if t.IsAlphabetic() && t.Case == keyboard.CaseAuto {
		t = keyboard.Alphabetic(keyboard.CaseLowercased)
	}

	a.mu.Lock()
	a.keyboardType = t
	a.mu.Unlock()

	a.rebuildKeys()
}

// nextLocale cycles through the registered locales.
func (a *App) nextLocale() {
	locales := a.registry.Locales()
	if len(locales) < 2 {
		return
	}

	a.mu.Lock()
	current := a.locale
	next := locales[0]
	for i, l := range locales {
		if l == current {
			next = locales[(i+1)%len(locales)]
			break
		}
	}
	a.locale = next
	a.mu.Unlock()

	a.log.Info("switched locale", "locale", next)
	a.rebuildKeys()
}

// custom dispatches to a script-registered handler.
func (a *App) custom(g action.Gesture, act action.Action) {
	if a.engine == nil {
		a.log.Warn("custom action without a script engine", "name", act.Name)
		return
	}
	if err := a.engine.Invoke(act.Name, g.String()); err != nil {
		a.log.Warn("custom action failed", "name", act.Name, "error", err)
	}
}
