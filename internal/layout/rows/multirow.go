package rows

// Multi-row variants apply a single-row operation independently per row.
// There is no cross-row atomicity: a row in which the target id is absent
// is simply left unchanged.

// InsertAfterInAll inserts item after the first occurrence of target in
// every row that contains it.
func InsertAfterInAll[R ~[]T, T Item[ID], ID comparable](all []R, item T, target ID) []R {
	out := make([]R, len(all))
	for i, row := range all {
		out[i] = InsertAfter(row, item, target)
	}
	return out
}

// InsertAfterInRow inserts item after the first occurrence of target in
// the row at the given index. Out-of-range indexes are a no-op.
func InsertAfterInRow[R ~[]T, T Item[ID], ID comparable](all []R, index int, item T, target ID) []R {
	if index < 0 || index >= len(all) {
		return all
	}
	out := make([]R, len(all))
	copy(out, all)
	out[index] = InsertAfter(all[index], item, target)
	return out
}

// InsertBeforeInAll inserts item before the first occurrence of target in
// every row that contains it.
func InsertBeforeInAll[R ~[]T, T Item[ID], ID comparable](all []R, item T, target ID) []R {
	out := make([]R, len(all))
	for i, row := range all {
		out[i] = InsertBefore(row, item, target)
	}
	return out
}

// InsertBeforeInRow inserts item before the first occurrence of target in
// the row at the given index. Out-of-range indexes are a no-op.
func InsertBeforeInRow[R ~[]T, T Item[ID], ID comparable](all []R, index int, item T, target ID) []R {
	if index < 0 || index >= len(all) {
		return all
	}
	out := make([]R, len(all))
	copy(out, all)
	out[index] = InsertBefore(all[index], item, target)
	return out
}

// RemoveInAll removes every occurrence of the id from every row.
func RemoveInAll[R ~[]T, T Item[ID], ID comparable](all []R, id ID) []R {
	out := make([]R, len(all))
	for i, row := range all {
		out[i] = Remove(row, id)
	}
	return out
}

// RemoveInRow removes every occurrence of the id from the row at the
// given index. Out-of-range indexes are a no-op.
func RemoveInRow[R ~[]T, T Item[ID], ID comparable](all []R, index int, id ID) []R {
	if index < 0 || index >= len(all) {
		return all
	}
	out := make([]R, len(all))
	copy(out, all)
	out[index] = Remove(all[index], id)
	return out
}

// ReplaceInAll replaces the id with the given item in every row that
// contains it.
func ReplaceInAll[R ~[]T, T Item[ID], ID comparable](all []R, id ID, with T) []R {
	out := make([]R, len(all))
	for i, row := range all {
		out[i] = Replace(row, id, with)
	}
	return out
}

// ReplaceInRow replaces the id with the given item in the row at the
// given index. Out-of-range indexes are a no-op.
func ReplaceInRow[R ~[]T, T Item[ID], ID comparable](all []R, index int, id ID, with T) []R {
	if index < 0 || index >= len(all) {
		return all
	}
	out := make([]R, len(all))
	copy(out, all)
	out[index] = Replace(all[index], id, with)
	return out
}
