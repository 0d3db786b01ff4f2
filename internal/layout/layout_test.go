package layout

import (
	"reflect"
	"testing"
)

func TestNewItemCaseVariants(t *testing.T) {
	it := NewItem("a")
	if it.Neutral != "a" || it.Uppercased != "A" || it.Lowercased != "a" {
		t.Errorf("NewItem(a) = %+v", it)
	}
	if it.HasHidden() {
		t.Error("plain item should have no hidden alternate")
	}
}

func TestNewItemWithHidden(t *testing.T) {
	it := NewItemWithHidden("e", "é")
	if !it.HasHidden() {
		t.Fatal("item should have a hidden alternate")
	}
	if got := it.HiddenText(true); got != "É" {
		t.Errorf("HiddenText(true) = %q, want É", got)
	}
	if got := it.HiddenText(false); got != "é" {
		t.Errorf("HiddenText(false) = %q, want é", got)
	}
}

func TestInputItemEqualityIsStructural(t *testing.T) {
	a := NewItemWithHidden("e", "é")
	b := NewItemWithHidden("e", "é")
	c := NewItem("e")

	if a != b {
		t.Error("identical items should be equal")
	}
	if a == c {
		t.Error("items differing in hidden alternate should not be equal")
	}
	if a.RowID() != a {
		t.Error("RowID should be the item itself")
	}
}

func TestNewRowSplitsGraphemes(t *testing.T) {
	row := NewRow("ab👍🏻c")
	want := Row{NewItem("a"), NewItem("b"), NewItem("👍🏻"), NewItem("c")}
	if !reflect.DeepEqual(row, want) {
		t.Errorf("NewRow = %v, want %v", row, want)
	}
}

func TestNewRowCased(t *testing.T) {
	row := NewRowCased("ab", "AB")
	if len(row) != 2 {
		t.Fatalf("len = %d, want 2", len(row))
	}
	if row[0].Text(true) != "A" || row[0].Text(false) != "a" {
		t.Errorf("row[0] = %+v", row[0])
	}
}

func TestEnglishProviderShape(t *testing.T) {
	p := EnglishProvider()
	rows := p.AlphabeticInputSet().Rows
	if len(rows) != 3 {
		t.Fatalf("alphabetic rows = %d, want 3", len(rows))
	}
	wantLens := []int{10, 9, 7}
	for i, want := range wantLens {
		if len(rows[i]) != want {
			t.Errorf("row %d length = %d, want %d", i, len(rows[i]), want)
		}
	}
	if len(p.NumericInputSet().Rows) != 3 || len(p.SymbolicInputSet().Rows) != 3 {
		t.Error("numeric and symbolic sets should have 3 rows")
	}
}

func TestGermanProviderDerivation(t *testing.T) {
	p := GermanProvider()
	rows := p.AlphabeticInputSet().Rows

	if got := rows[0][0].Neutral; got != "q" {
		t.Errorf("first key = %q, want q", got)
	}
	if got := rows[0][5].Neutral; got != "z" {
		t.Errorf("qwertz position 5 = %q, want z", got)
	}
	if got := rows[2][0].Neutral; got != "y" {
		t.Errorf("bottom row start = %q, want y", got)
	}
	if got := rows[0][len(rows[0])-1].Neutral; got != "ü" {
		t.Errorf("top row end = %q, want ü", got)
	}
	if got := rows[1][len(rows[1])-1].Neutral; got != "ä" {
		t.Errorf("home row end = %q, want ä", got)
	}
	if got := rows[1][len(rows[1])-2].Neutral; got != "ö" {
		t.Errorf("home row second-to-last = %q, want ö", got)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := StandardRegistry()

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en"},
		{"en-GB", "en"},
		{"de", "de"},
		{"de_AT", "de"},
		{"fr", "en"}, // unknown falls back
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			p := r.For(tt.locale)
			if p == nil {
				t.Fatal("For returned nil provider")
			}
			if got := p.Locale(); got != tt.want {
				t.Errorf("For(%q).Locale() = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestRegistryRegisterOverride(t *testing.T) {
	r := NewRegistry(EnglishProvider())
	custom := StaticProvider{Lang: "en", Alphabetic: InputSet{Rows: []Row{NewRow("abc")}}}
	r.Register(custom)

	got := r.For("en").AlphabeticInputSet().Rows
	if len(got) != 1 || len(got[0]) != 3 {
		t.Errorf("override provider not returned, rows = %v", got)
	}
}

func TestInputSetRowOps(t *testing.T) {
	s := InputSet{Rows: []Row{NewRow("abc"), NewRow("xbz")}}

	s2 := s.InsertAfterInAll(NewItem("!"), NewItem("b"))
	if got := s2.Rows[0][2]; got.Neutral != "!" {
		t.Errorf("row 0 after insert = %v", s2.Rows[0])
	}
	if got := s2.Rows[1][2]; got.Neutral != "!" {
		t.Errorf("row 1 after insert = %v", s2.Rows[1])
	}

	s3 := s.RemoveInRow(0, NewItem("a"))
	if len(s3.Rows[0]) != 2 || len(s3.Rows[1]) != 3 {
		t.Errorf("RemoveInRow affected the wrong rows: %v", s3.Rows)
	}
}
