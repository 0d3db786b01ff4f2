// Package action defines the semantic keyboard actions produced by the
// gesture pipeline. An Action is an immutable value compared by structural
// equality; the executor that carries actions out lives outside this core.
package action

import "github.com/dshills/touchkey/internal/keyboard"

// Kind identifies what a key does.
type Kind uint8

const (
	// KindNone is the no-op action.
	KindNone Kind = iota
	// KindCharacter inserts a character string.
	KindCharacter
	// KindCharacterMargin is a non-interactive margin placeholder that
	// visually extends an adjacent character key.
	KindCharacterMargin
	// KindBackspace deletes backwards from the cursor.
	KindBackspace
	// KindSpace inserts a space.
	KindSpace
	// KindShift changes the alphabetic shift state.
	KindShift
	// KindNewLine inserts a line break.
	KindNewLine
	// KindPrimary is the context-dependent primary action key
	// (search, done, go, ok, return).
	KindPrimary
	// KindKeyboardType switches to another keyboard type.
	KindKeyboardType
	// KindNextLocale switches to the next active locale.
	KindNextLocale
	// KindEmoji inserts an emoji.
	KindEmoji
	// KindDismiss dismisses the keyboard.
	KindDismiss
	// KindCustom dispatches to a named host- or script-defined handler.
	KindCustom
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindCharacterMargin:
		return "characterMargin"
	case KindBackspace:
		return "backspace"
	case KindSpace:
		return "space"
	case KindShift:
		return "shift"
	case KindNewLine:
		return "newLine"
	case KindPrimary:
		return "primary"
	case KindKeyboardType:
		return "keyboardType"
	case KindNextLocale:
		return "nextLocale"
	case KindEmoji:
		return "emoji"
	case KindDismiss:
		return "dismiss"
	case KindCustom:
		return "custom"
	default:
		return "none"
	}
}

// PrimaryType identifies the semantic of the primary action key.
type PrimaryType uint8

const (
	// PrimaryReturn is a plain return/newline primary key.
	PrimaryReturn PrimaryType = iota
	// PrimarySearch submits a search.
	PrimarySearch
	// PrimaryDone completes the current input.
	PrimaryDone
	// PrimaryGo navigates to the entered value.
	PrimaryGo
	// PrimaryOK confirms the current input.
	PrimaryOK
)

// String returns a string representation of the primary type.
func (p PrimaryType) String() string {
	switch p {
	case PrimarySearch:
		return "search"
	case PrimaryDone:
		return "done"
	case PrimaryGo:
		return "go"
	case PrimaryOK:
		return "ok"
	default:
		return "return"
	}
}

// Action is a semantic keyboard action. Only the fields relevant to the
// Kind are populated; the zero value is the no-op action. Actions are
// comparable, so structural equality is the == operator.
type Action struct {
	// Kind discriminates the variant.
	Kind Kind

	// Char is the payload for character, margin, and emoji actions.
	Char string

	// Shift is the target state for shift actions.
	Shift keyboard.Case

	// Keyboard is the target type for keyboard-type switch actions.
	Keyboard keyboard.Type

	// Primary is the semantic for primary actions.
	Primary PrimaryType

	// Name identifies the handler for custom actions.
	Name string
}

// None is the no-op action.
var None = Action{}

// Character returns a character-insertion action.
func Character(s string) Action {
	return Action{Kind: KindCharacter, Char: s}
}

// CharacterMargin returns a margin placeholder for the given character.
func CharacterMargin(s string) Action {
	return Action{Kind: KindCharacterMargin, Char: s}
}

// Backspace is the backwards-deletion action.
var Backspace = Action{Kind: KindBackspace}

// Space is the space-insertion action.
var Space = Action{Kind: KindSpace}

// NewLine is the line-break action.
var NewLine = Action{Kind: KindNewLine}

// NextLocale is the locale-switch action.
var NextLocale = Action{Kind: KindNextLocale}

// Dismiss is the keyboard-dismiss action.
var Dismiss = Action{Kind: KindDismiss}

// Shift returns a shift action targeting the given case.
func Shift(c keyboard.Case) Action {
	return Action{Kind: KindShift, Shift: c}
}

// KeyboardType returns a keyboard-type switch action.
func KeyboardType(t keyboard.Type) Action {
	return Action{Kind: KindKeyboardType, Keyboard: t}
}

// Primary returns a primary action of the given type.
func Primary(p PrimaryType) Action {
	return Action{Kind: KindPrimary, Primary: p}
}

// Emoji returns an emoji-insertion action.
func Emoji(s string) Action {
	return Action{Kind: KindEmoji, Char: s}
}

// Custom returns a custom action dispatching to the named handler.
func Custom(name string) Action {
	return Action{Kind: KindCustom, Name: name}
}

// IsNone returns true for the no-op action.
func (a Action) IsNone() bool {
	return a.Kind == KindNone
}

// IsInput returns true for actions that insert text into the document.
func (a Action) IsInput() bool {
	switch a.Kind {
	case KindCharacter, KindSpace, KindNewLine, KindEmoji:
		return true
	default:
		return false
	}
}

// IsShift returns true for shift actions.
func (a Action) IsShift() bool {
	return a.Kind == KindShift
}

// IsSpacer returns true for non-interactive placeholder actions.
func (a Action) IsSpacer() bool {
	return a.Kind == KindCharacterMargin || a.Kind == KindNone
}

// InputText returns the text an input action inserts, or "" for
// non-input actions.
func (a Action) InputText() string {
	switch a.Kind {
	case KindCharacter, KindEmoji:
		return a.Char
	case KindSpace:
		return " "
	case KindNewLine:
		return "\n"
	default:
		return ""
	}
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a.Kind {
	case KindCharacter, KindCharacterMargin, KindEmoji:
		return a.Kind.String() + "(" + a.Char + ")"
	case KindShift:
		return "shift(" + a.Shift.String() + ")"
	case KindKeyboardType:
		return "keyboardType(" + a.Keyboard.String() + ")"
	case KindPrimary:
		return "primary(" + a.Primary.String() + ")"
	case KindCustom:
		return "custom(" + a.Name + ")"
	default:
		return a.Kind.String()
	}
}
