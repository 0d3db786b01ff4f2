package behavior

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TrailingDeletionLength returns the number of bytes a backspace of the
// given range removes from the end of text. Character deletions remove
// one grapheme cluster, so multi-rune characters such as emoji are
// removed whole. Word deletions remove trailing whitespace plus the
// preceding word.
func TrailingDeletionLength(text string, r DeleteRange) int {
	if text == "" {
		return 0
	}

	switch r {
	case RangeWord:
		trimmed := strings.TrimRight(text, " \t")
		if trimmed == "" {
			return len(text)
		}
		if strings.HasSuffix(trimmed, "\n") {
			// A trailing newline deletes on its own.
			return len(text) - len(trimmed) + 1
		}
		cut := strings.LastIndexAny(trimmed, " \t\n")
		return len(text) - (cut + 1)
	default:
		lastStart := 0
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			start, _ := g.Positions()
			lastStart = start
		}
		return len(text) - lastStart
	}
}
