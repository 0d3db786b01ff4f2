package keyboard

import "testing"

func TestCaseIsUppercased(t *testing.T) {
	tests := []struct {
		c    Case
		want bool
	}{
		{CaseAuto, false},
		{CaseLowercased, false},
		{CaseUppercased, true},
		{CaseCapsLocked, true},
	}

	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			if got := tt.c.IsUppercased(); got != tt.want {
				t.Errorf("IsUppercased = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		ty   Type
		want string
	}{
		{Alphabetic(CaseUppercased), "alphabetic(uppercased)"},
		{Numeric, "numeric"},
		{Symbolic, "symbolic"},
	}

	for _, tt := range tests {
		if got := tt.ty.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSnapshotCursorPredicates(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		atWord     bool
		atSentence bool
	}{
		{"empty", "", true, true},
		{"mid word", "hel", false, false},
		{"after space", "hello ", true, false},
		{"after newline", "hello\n", true, false},
		{"after period and space", "done. ", true, true},
		{"after exclamation", "done!", false, true},
		{"question with spaces", "why?  ", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot{TextBefore: tt.text}
			if got := s.IsCursorAtNewWord(); got != tt.atWord {
				t.Errorf("IsCursorAtNewWord(%q) = %v, want %v", tt.text, got, tt.atWord)
			}
			if got := s.IsCursorAtNewSentence(); got != tt.atSentence {
				t.Errorf("IsCursorAtNewSentence(%q) = %v, want %v", tt.text, got, tt.atSentence)
			}
		})
	}
}
