// Package keyboard defines the shared keyboard-state vocabulary: keyboard
// types, shift casing, device classes, and the context snapshot supplied by
// the host text-input layer.
package keyboard

// Case represents the shift state of an alphabetic keyboard.
type Case uint8

const (
	// CaseAuto indicates casing should be derived from the text context.
	CaseAuto Case = iota
	// CaseLowercased is the plain lowercase state.
	CaseLowercased
	// CaseUppercased is the transient shifted state.
	CaseUppercased
	// CaseCapsLocked is the locked uppercase state.
	CaseCapsLocked
)

// String returns a string representation of the case.
func (c Case) String() string {
	switch c {
	case CaseLowercased:
		return "lowercased"
	case CaseUppercased:
		return "uppercased"
	case CaseCapsLocked:
		return "capslocked"
	default:
		return "auto"
	}
}

// IsUppercased returns true for the shifted and caps-locked states.
func (c Case) IsUppercased() bool {
	return c == CaseUppercased || c == CaseCapsLocked
}

// Kind identifies a keyboard type family.
type Kind uint8

const (
	// KindAlphabetic is the letter keyboard; it carries a Case.
	KindAlphabetic Kind = iota
	// KindNumeric is the number keyboard.
	KindNumeric
	// KindSymbolic is the symbol keyboard.
	KindSymbolic
	// KindEmojis is the emoji keyboard.
	KindEmojis
	// KindCustom is a host-defined keyboard.
	KindCustom
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAlphabetic:
		return "alphabetic"
	case KindNumeric:
		return "numeric"
	case KindSymbolic:
		return "symbolic"
	case KindEmojis:
		return "emojis"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Type identifies a keyboard mode. Only alphabetic keyboards carry a
// meaningful Case; for all other kinds the Case is CaseAuto.
type Type struct {
	Kind Kind
	Case Case
}

// Alphabetic returns an alphabetic keyboard type with the given case.
func Alphabetic(c Case) Type {
	return Type{Kind: KindAlphabetic, Case: c}
}

// Well-known keyboard types.
var (
	Numeric  = Type{Kind: KindNumeric}
	Symbolic = Type{Kind: KindSymbolic}
	Emojis   = Type{Kind: KindEmojis}
)

// IsAlphabetic returns true if the type is an alphabetic keyboard.
func (t Type) IsAlphabetic() bool {
	return t.Kind == KindAlphabetic
}

// String returns a string representation of the type.
func (t Type) String() string {
	if t.Kind == KindAlphabetic {
		return "alphabetic(" + t.Case.String() + ")"
	}
	return t.Kind.String()
}

// DeviceClass identifies the class of device hosting the keyboard.
type DeviceClass uint8

const (
	// DeviceUnknown is an unrecognized device class.
	DeviceUnknown DeviceClass = iota
	// DevicePhone is a phone-sized device.
	DevicePhone
	// DeviceTablet is a tablet-sized device.
	DeviceTablet
)

// String returns a string representation of the device class.
func (d DeviceClass) String() string {
	switch d {
	case DevicePhone:
		return "phone"
	case DeviceTablet:
		return "tablet"
	default:
		return "unknown"
	}
}
