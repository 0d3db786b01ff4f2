package keyboard

import "strings"

// Context is a read-only snapshot of keyboard and text-cursor state,
// supplied by the host text-input layer. The behavior policy and gesture
// dispatcher consult it but never mutate it.
type Context interface {
	// KeyboardType is the keyboard mode currently displayed.
	KeyboardType() Type

	// PreferredKeyboardType is the mode the system wants to return to
	// after a transient mode change.
	PreferredKeyboardType() Type

	// Locale is the BCP 47 language tag of the active layout.
	Locale() string

	// Device is the class of device hosting the keyboard.
	Device() DeviceClass

	// TextBeforeCursor is the document text immediately before the cursor.
	TextBeforeCursor() string

	// IsCursorAtNewWord is true when the cursor follows a word boundary.
	IsCursorAtNewWord() bool

	// IsCursorAtNewSentence is true when the cursor follows a sentence
	// boundary.
	IsCursorAtNewSentence() bool
}

// Snapshot is a plain-value Context implementation. The demo harness and
// tests populate it directly; hosts with live text state can implement
// Context themselves.
type Snapshot struct {
	Type          Type
	PreferredType Type
	Lang          string
	DeviceClass   DeviceClass
	TextBefore    string
}

// KeyboardType returns the current keyboard type.
func (s Snapshot) KeyboardType() Type { return s.Type }

// PreferredKeyboardType returns the preferred keyboard type.
func (s Snapshot) PreferredKeyboardType() Type { return s.PreferredType }

// Locale returns the active locale tag.
func (s Snapshot) Locale() string { return s.Lang }

// Device returns the device class.
func (s Snapshot) Device() DeviceClass { return s.DeviceClass }

// TextBeforeCursor returns the text before the cursor.
func (s Snapshot) TextBeforeCursor() string { return s.TextBefore }

// IsCursorAtNewWord returns true if the text before the cursor ends with
// whitespace or is empty.
func (s Snapshot) IsCursorAtNewWord() bool {
	t := s.TextBefore
	if t == "" {
		return true
	}
	return strings.HasSuffix(t, " ") || strings.HasSuffix(t, "\n") || strings.HasSuffix(t, "\t")
}

// IsCursorAtNewSentence returns true if the trimmed text before the cursor
// is empty or ends with a sentence delimiter.
func (s Snapshot) IsCursorAtNewSentence() bool {
	t := strings.TrimRight(s.TextBefore, " \n\t")
	if t == "" {
		return true
	}
	return strings.HasSuffix(t, ".") || strings.HasSuffix(t, "!") || strings.HasSuffix(t, "?")
}
