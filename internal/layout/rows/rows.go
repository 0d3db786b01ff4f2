// Package rows provides generic, order-preserving mutation of layout rows.
//
// A row is an ordered slice of identity-bearing items. Identity is the
// item's own value: an item is located by comparing RowID values, and
// duplicate ids resolve to the first match for indexing and insertion.
// Every operation is total; an absent id makes the operation a no-op
// rather than an error.
package rows

// Item is implemented by row members. RowID returns the value used to
// locate the item within a row; for simple value types it is typically
// the item itself.
type Item[ID comparable] interface {
	RowID() ID
}

// Index returns the index of the first item with the given id, or -1 if
// no item matches.
func Index[R ~[]T, T Item[ID], ID comparable](row R, id ID) int {
	for i, it := range row {
		if it.RowID() == id {
			return i
		}
	}
	return -1
}

// InsertAfter returns the row with item inserted immediately after the
// first occurrence of target. The row is returned unchanged when target
// is absent.
func InsertAfter[R ~[]T, T Item[ID], ID comparable](row R, item T, target ID) R {
	i := Index(row, target)
	if i < 0 {
		return row
	}
	return insertAt(row, i+1, item)
}

// InsertBefore returns the row with item inserted immediately before the
// first occurrence of target. The row is returned unchanged when target
// is absent.
func InsertBefore[R ~[]T, T Item[ID], ID comparable](row R, item T, target ID) R {
	i := Index(row, target)
	if i < 0 {
		return row
	}
	return insertAt(row, i, item)
}

// Remove returns the row with every occurrence of the given id removed.
func Remove[R ~[]T, T Item[ID], ID comparable](row R, id ID) R {
	out := make(R, 0, len(row))
	for _, it := range row {
		if it.RowID() == id {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Replace returns the row with the first occurrence of the given id
// replaced by with, and any further occurrences of the id removed. The
// replacement is inserted after the first match and the original id is
// then removed everywhere, so on rows with duplicate ids exactly one
// replacement remains, at the first occurrence's position. When the
// replacement carries the same id as the original, it is exempted from
// the removal pass.
func Replace[R ~[]T, T Item[ID], ID comparable](row R, id ID, with T) R {
	first := Index(row, id)
	if first < 0 {
		return row
	}
	expanded := insertAt(row, first+1, with)
	insertedAt := first + 1
	sameID := with.RowID() == id
	out := make(R, 0, len(expanded))
	for i, it := range expanded {
		if it.RowID() == id && !(sameID && i == insertedAt) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// insertAt returns the row with item inserted at index i. The index is
// assumed to be within [0, len(row)].
func insertAt[R ~[]T, T any](row R, i int, item T) R {
	out := make(R, 0, len(row)+1)
	out = append(out, row[:i]...)
	out = append(out, item)
	out = append(out, row[i:]...)
	return out
}
