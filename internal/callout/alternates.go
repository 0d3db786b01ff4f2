// Package callout tracks the transient selection state shown while a key
// is pressed: the input preview ("what will be typed") and the alternate
// character picker driven by a press-and-drag gesture.
package callout

import (
	"strings"
	"sync"

	"github.com/dshills/touchkey/internal/action"
)

// AlternatesProvider returns the alternate characters reachable from an
// action via long-press. An empty slice means no callout opens.
type AlternatesProvider interface {
	Alternates(a action.Action) []string
}

// StandardAlternates is a table-driven AlternatesProvider with the usual
// Latin diacritic sets. Lookups are case-preserving: alternates for an
// uppercase base character are uppercased.
type StandardAlternates struct {
	mu    sync.RWMutex
	table map[string][]string
}

// NewStandardAlternates creates a provider with the default table.
func NewStandardAlternates() *StandardAlternates {
	return &StandardAlternates{table: map[string][]string{
		"a": {"à", "á", "â", "ä", "æ", "ã", "å", "ā"},
		"c": {"ç", "ć", "č"},
		"e": {"è", "é", "ê", "ë", "ē", "ė", "ę"},
		"i": {"î", "ï", "í", "ī", "į", "ì"},
		"n": {"ñ", "ń"},
		"o": {"ô", "ö", "ò", "ó", "œ", "ø", "ō", "õ"},
		"s": {"ś", "š", "ß"},
		"u": {"û", "ü", "ù", "ú", "ū"},
		"y": {"ÿ"},
		"z": {"ž", "ź", "ż"},
		"$": {"€", "£", "¥", "₽", "₸"},
		"-": {"–", "—", "•"},
		"/": {"\\"},
		"'": {"‘", "’", "‚", "‛"},
		`"`: {"“", "”", "„", "‟"},
		"!": {"¡"},
		"?": {"¿"},
		".": {"…"},
	}}
}

// Set registers or replaces the alternates for a base character.
func (p *StandardAlternates) Set(base string, alternates []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.table[strings.ToLower(base)] = alternates
}

// Alternates returns the alternates for character actions, preserving
// the case of the base character. Non-character actions have none.
func (p *StandardAlternates) Alternates(a action.Action) []string {
	if a.Kind != action.KindCharacter || a.Char == "" {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if alts, ok := p.table[a.Char]; ok {
		return append([]string(nil), alts...)
	}
	lower := strings.ToLower(a.Char)
	alts, ok := p.table[lower]
	if !ok {
		return nil
	}
	if a.Char == lower {
		return append([]string(nil), alts...)
	}
	out := make([]string, len(alts))
	for i, alt := range alts {
		out[i] = strings.ToUpper(alt)
	}
	return out
}
