package rows

import (
	"reflect"
	"testing"
)

// key is a minimal identity-bearing item whose id is its own value.
type key string

func (k key) RowID() key { return k }

func row(chars ...string) []key {
	out := make([]key, len(chars))
	for i, c := range chars {
		out[i] = key(c)
	}
	return out
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		row  []key
		id   key
		want int
	}{
		{"present", row("a", "b", "c"), "b", 1},
		{"absent", row("a", "b", "c"), "x", -1},
		{"duplicate resolves to first", row("a", "b", "a"), "a", 0},
		{"empty row", nil, "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.row, tt.id); got != tt.want {
				t.Errorf("Index(%v, %q) = %d, want %d", tt.row, tt.id, got, tt.want)
			}
		})
	}
}

func TestInsertAfter(t *testing.T) {
	tests := []struct {
		name   string
		row    []key
		item   key
		target key
		want   []key
	}{
		{"middle", row("a", "b", "c"), "x", "b", row("a", "b", "x", "c")},
		{"end", row("a", "b", "c"), "x", "c", row("a", "b", "c", "x")},
		{"absent target is no-op", row("a", "b"), "x", "z", row("a", "b")},
		{"duplicate target uses first", row("a", "b", "a"), "x", "a", row("a", "x", "b", "a")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertAfter(tt.row, tt.item, tt.target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InsertAfter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertBefore(t *testing.T) {
	tests := []struct {
		name   string
		row    []key
		item   key
		target key
		want   []key
	}{
		{"middle", row("a", "b", "c"), "x", "b", row("a", "x", "b", "c")},
		{"start", row("a", "b", "c"), "x", "a", row("x", "a", "b", "c")},
		{"absent target is no-op", row("a", "b"), "x", "z", row("a", "b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InsertBefore(tt.row, tt.item, tt.target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InsertBefore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveAllOccurrences(t *testing.T) {
	got := Remove(row("a", "b", "a", "c", "a"), key("a"))
	want := row("b", "c")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Remove = %v, want %v", got, want)
	}

	if got := Remove(row("a", "b"), key("z")); !reflect.DeepEqual(got, row("a", "b")) {
		t.Errorf("Remove of absent id changed the row: %v", got)
	}
}

func TestReplace(t *testing.T) {
	t.Run("single occurrence", func(t *testing.T) {
		got := Replace(row("a", "b", "c"), key("b"), key("x"))
		want := row("a", "x", "c")
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Replace = %v, want %v", got, want)
		}
	})

	// Documented duplicate-id behavior: the replacement lands at the
	// first occurrence's position and every other occurrence is removed.
	t.Run("duplicates collapse to one replacement", func(t *testing.T) {
		got := Replace(row("a", "b", "a"), key("a"), key("x"))
		want := row("x", "b")
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Replace = %v, want %v", got, want)
		}
	})

	// The replacement must survive the remove-all pass when it carries
	// the same id as the original.
	t.Run("replacement with same id survives", func(t *testing.T) {
		got := Replace(row("a", "b", "a"), key("a"), key("a"))
		want := row("a", "b")
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Replace = %v, want %v", got, want)
		}
	})

	t.Run("absent id is no-op", func(t *testing.T) {
		got := Replace(row("a", "b"), key("z"), key("x"))
		if !reflect.DeepEqual(got, row("a", "b")) {
			t.Errorf("Replace of absent id changed the row: %v", got)
		}
	})
}

func TestMultiRowIndependence(t *testing.T) {
	all := [][]key{
		row("a", "b"),
		row("c", "d"),
		row("b", "b"),
	}

	t.Run("insert after in all", func(t *testing.T) {
		got := InsertAfterInAll(all, key("x"), key("b"))
		want := [][]key{
			row("a", "b", "x"),
			row("c", "d"), // absent id skips the row
			row("b", "x", "b"),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("InsertAfterInAll = %v, want %v", got, want)
		}
	})

	t.Run("remove in all", func(t *testing.T) {
		got := RemoveInAll(all, key("b"))
		want := [][]key{row("a"), row("c", "d"), {}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("RemoveInAll = %v, want %v", got, want)
		}
	})

	t.Run("row-indexed variant targets one row", func(t *testing.T) {
		got := InsertBeforeInRow(all, 1, key("x"), key("d"))
		want := [][]key{
			row("a", "b"),
			row("c", "x", "d"),
			row("b", "b"),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("InsertBeforeInRow = %v, want %v", got, want)
		}
	})

	t.Run("out of range index is no-op", func(t *testing.T) {
		if got := RemoveInRow(all, 9, key("b")); !reflect.DeepEqual(got, all) {
			t.Errorf("RemoveInRow out of range changed rows: %v", got)
		}
	})

	t.Run("source rows are not mutated", func(t *testing.T) {
		_ = ReplaceInAll(all, key("b"), key("x"))
		if !reflect.DeepEqual(all[0], row("a", "b")) {
			t.Errorf("source row mutated: %v", all[0])
		}
	})
}
