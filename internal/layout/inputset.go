package layout

import "github.com/dshills/touchkey/internal/layout/rows"

// InputSet is a declarative, per-locale definition of primary keys,
// independent of the full keyboard layout (system keys and bottom rows
// are added by the renderer).
type InputSet struct {
	Rows []Row
}

// Convenience wrappers over the generic row engine. All operations are
// order-preserving and treat an absent item as a no-op.

// IndexOf returns the index of the first occurrence of item, or -1.
func (r Row) IndexOf(item InputItem) int {
	return rows.Index(r, item)
}

// InsertAfter returns the row with item inserted after target.
func (r Row) InsertAfter(item, target InputItem) Row {
	return rows.InsertAfter(r, item, target)
}

// InsertBefore returns the row with item inserted before target.
func (r Row) InsertBefore(item, target InputItem) Row {
	return rows.InsertBefore(r, item, target)
}

// Remove returns the row with every occurrence of item removed.
func (r Row) Remove(item InputItem) Row {
	return rows.Remove(r, item)
}

// Replace returns the row with the first occurrence of item replaced
// by with and any duplicates removed.
func (r Row) Replace(item, with InputItem) Row {
	return rows.Replace(r, item, with)
}

// InsertAfterInAll inserts item after target in every row containing it.
func (s InputSet) InsertAfterInAll(item, target InputItem) InputSet {
	return InputSet{Rows: rows.InsertAfterInAll(s.Rows, item, target)}
}

// InsertAfterInRow inserts item after target in the row at index.
func (s InputSet) InsertAfterInRow(index int, item, target InputItem) InputSet {
	return InputSet{Rows: rows.InsertAfterInRow(s.Rows, index, item, target)}
}

// InsertBeforeInAll inserts item before target in every row containing it.
func (s InputSet) InsertBeforeInAll(item, target InputItem) InputSet {
	return InputSet{Rows: rows.InsertBeforeInAll(s.Rows, item, target)}
}

// InsertBeforeInRow inserts item before target in the row at index.
func (s InputSet) InsertBeforeInRow(index int, item, target InputItem) InputSet {
	return InputSet{Rows: rows.InsertBeforeInRow(s.Rows, index, item, target)}
}

// RemoveInAll removes every occurrence of item from every row.
func (s InputSet) RemoveInAll(item InputItem) InputSet {
	return InputSet{Rows: rows.RemoveInAll(s.Rows, item)}
}

// RemoveInRow removes every occurrence of item from the row at index.
func (s InputSet) RemoveInRow(index int, item InputItem) InputSet {
	return InputSet{Rows: rows.RemoveInRow(s.Rows, index, item)}
}

// ReplaceInAll replaces item with with in every row containing it.
func (s InputSet) ReplaceInAll(item, with InputItem) InputSet {
	return InputSet{Rows: rows.ReplaceInAll(s.Rows, item, with)}
}

// ReplaceInRow replaces item with with in the row at index.
func (s InputSet) ReplaceInRow(index int, item, with InputItem) InputSet {
	return InputSet{Rows: rows.ReplaceInRow(s.Rows, index, item, with)}
}
