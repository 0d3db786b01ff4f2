// Package behavior decides contextual keyboard behavior: caps-lock via
// double-tapped shift, sentence auto-closing, preferred-keyboard-type
// restoration, and backspace deletion granularity. Decisions are pure
// reads of a keyboard.Context snapshot plus the policy's own tap
// timestamps; nothing here mutates keyboard state.
package behavior

import (
	"time"

	"github.com/dshills/touchkey/internal/action"
	"github.com/dshills/touchkey/internal/keyboard"
)

// DeleteRange is the granularity of a backspace deletion.
type DeleteRange uint8

const (
	// RangeCharacter deletes one grapheme cluster.
	RangeCharacter DeleteRange = iota
	// RangeWord deletes back to the previous word boundary.
	RangeWord
)

// String returns a string representation of the range.
func (r DeleteRange) String() string {
	switch r {
	case RangeWord:
		return "word"
	default:
		return "character"
	}
}

// RepeatTimer exposes how long the current repeat gesture has been
// running. The timer is owned by the gesture layer; the policy only
// polls it. A zero elapsed duration means no repeat is in progress.
type RepeatTimer interface {
	Elapsed() time.Duration
}

// Policy answers the behavior questions the dispatcher and action
// executor ask. Custom behavior is a different Policy implementation
// composed by the caller, not a subclass.
type Policy interface {
	// PreferredKeyboardType returns the keyboard type the system should
	// show after the given gesture on the given action.
	PreferredKeyboardType(ctx keyboard.Context, g action.Gesture, a action.Action) keyboard.Type

	// ShouldEndSentence returns true when a space release should close
	// the current sentence.
	ShouldEndSentence(ctx keyboard.Context, g action.Gesture, a action.Action) bool

	// ShouldSwitchToCapsLock returns true when a shift tap completes a
	// double-tap and the keyboard should caps-lock.
	ShouldSwitchToCapsLock(ctx keyboard.Context, a action.Action) bool

	// ShouldSwitchToPreferredKeyboardType returns true when the gesture
	// is a definitive signal to restore the preferred keyboard type.
	ShouldSwitchToPreferredKeyboardType(ctx keyboard.Context, g action.Gesture, a action.Action) bool

	// BackspaceRange returns the deletion granularity for the current
	// repeat-gesture duration.
	BackspaceRange() DeleteRange
}
