package behavior

import "testing"

func TestTrailingDeletionLength(t *testing.T) {
	tests := []struct {
		name string
		text string
		r    DeleteRange
		want int
	}{
		{"empty", "", RangeCharacter, 0},
		{"ascii char", "abc", RangeCharacter, 1},
		{"multibyte char", "abé", RangeCharacter, len("é")},
		{"emoji with modifier", "hi\U0001F44D\U0001F3FB", RangeCharacter, len("\U0001F44D\U0001F3FB")},
		{"combining sequence", "ae\u0301", RangeCharacter, len("e\u0301")},

		{"word", "hello world", RangeWord, len("world")},
		{"word with trailing spaces", "hello world  ", RangeWord, len("world  ")},
		{"single word", "hello", RangeWord, len("hello")},
		{"only spaces", "   ", RangeWord, 3},
		{"trailing newline alone", "hello\n", RangeWord, 1},
		{"newline then spaces", "hello\n  ", RangeWord, 3},
		{"word after tab", "a\tb", RangeWord, 1},
		{"empty word", "", RangeWord, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrailingDeletionLength(tt.text, tt.r)
			if got != tt.want {
				t.Errorf("TrailingDeletionLength(%q, %v) = %d, want %d", tt.text, tt.r, got, tt.want)
			}
			if got > len(tt.text) {
				t.Errorf("deletion length %d exceeds text length %d", got, len(tt.text))
			}
		})
	}
}
