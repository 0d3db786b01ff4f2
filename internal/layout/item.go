// Package layout declares per-locale input sets: the character payloads of
// keyboard keys, organized into ordered rows, with case variants and
// optional hidden alternates. Rows are assembled and customized with the
// generic engine in layout/rows.
package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// HiddenItem is the optional alternate character hidden behind a key,
// reachable via long-press and drag. The zero value means no hidden item.
// Hidden items do not nest further.
type HiddenItem struct {
	Neutral    string
	Uppercased string
	Lowercased string
}

// IsZero returns true if no hidden item is set.
func (h HiddenItem) IsZero() bool {
	return h == HiddenItem{}
}

// InputItem is a key's text payload: neutral, uppercase, and lowercase
// variants plus an optional hidden alternate. InputItem is comparable;
// equality is structural over all four fields and an item's identity
// within a row is its own value.
type InputItem struct {
	Neutral    string
	Uppercased string
	Lowercased string
	Hidden     HiddenItem
}

// NewItem returns an item whose case variants are derived from s.
func NewItem(s string) InputItem {
	return InputItem{
		Neutral:    s,
		Uppercased: strings.ToUpper(s),
		Lowercased: strings.ToLower(s),
	}
}

// NewItemWithHidden returns an item with a hidden alternate derived
// from hidden.
func NewItemWithHidden(s, hidden string) InputItem {
	it := NewItem(s)
	it.Hidden = HiddenItem{
		Neutral:    hidden,
		Uppercased: strings.ToUpper(hidden),
		Lowercased: strings.ToLower(hidden),
	}
	return it
}

// RowID returns the item itself; identity is the full item value.
func (i InputItem) RowID() InputItem {
	return i
}

// Text returns the variant appropriate for the given uppercase state.
func (i InputItem) Text(uppercased bool) string {
	if uppercased {
		return i.Uppercased
	}
	return i.Lowercased
}

// HasHidden returns true if the item carries a hidden alternate.
func (i InputItem) HasHidden() bool {
	return !i.Hidden.IsZero()
}

// HiddenText returns the hidden alternate's variant for the given
// uppercase state, or "" when there is none.
func (i InputItem) HiddenText(uppercased bool) string {
	if i.Hidden.IsZero() {
		return ""
	}
	if uppercased {
		return i.Hidden.Uppercased
	}
	return i.Hidden.Lowercased
}

// Row is an ordered sequence of input items. Order is significant and
// preserved under all mutation operations.
type Row []InputItem

// NewRow splits chars into grapheme clusters and returns a row with one
// item per cluster. Splitting by grapheme keeps multi-rune characters
// such as emoji intact.
func NewRow(chars string) Row {
	var row Row
	g := uniseg.NewGraphemes(chars)
	for g.Next() {
		row = append(row, NewItem(g.Str()))
	}
	return row
}

// NewRowCased returns a row pairing lowercase and uppercase variants by
// grapheme position. Both strings must contain the same number of
// clusters; trailing unpaired clusters are ignored.
func NewRowCased(lower, upper string) Row {
	var lowers, uppers []string
	g := uniseg.NewGraphemes(lower)
	for g.Next() {
		lowers = append(lowers, g.Str())
	}
	g = uniseg.NewGraphemes(upper)
	for g.Next() {
		uppers = append(uppers, g.Str())
	}
	n := len(lowers)
	if len(uppers) < n {
		n = len(uppers)
	}
	row := make(Row, 0, n)
	for i := 0; i < n; i++ {
		row = append(row, InputItem{
			Neutral:    lowers[i],
			Uppercased: uppers[i],
			Lowercased: lowers[i],
		})
	}
	return row
}
