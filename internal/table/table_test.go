package table

import (
	"math"
	"reflect"
	"testing"
)

type row struct {
	name  string
	score float64
}

var testColumns = Columns[row]{
	{Key: "name", Label: "Name", Kind: KindString, Text: func(r row) string { return r.name }},
	{Key: "score", Label: "Score", Kind: KindNumber, Number: func(r row) float64 { return r.score }},
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.name
	}
	return out
}

// TestSortNumberAscDescAreReverses checks that sorting distinct numeric
// values ascending and then descending yields exact reverses.
func TestSortNumberAscDescAreReverses(t *testing.T) {
	rows := []row{{"a", 0.3}, {"b", -1.2}, {"c", 7}, {"d", 0.31}, {"e", 2}}
	col, _ := testColumns.Lookup("score")

	asc := Sort(rows, col, Asc)
	desc := Sort(rows, col, Desc)

	if got, want := names(asc), []string{"b", "a", "d", "e", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("asc = %v, want %v", got, want)
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc is not the reverse of asc: asc=%v desc=%v", names(asc), names(desc))
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	rows := []row{{"Skin", 1}, {"lung", 2}, {"Breast", 3}, {"colon", 4}}
	col, _ := testColumns.Lookup("name")

	once := Sort(rows, col, Asc)
	twice := Sort(once, col, Asc)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("sorting twice changed order: %v vs %v", names(once), names(twice))
	}
}

// TestSortStringUsesCollation verifies that case does not dominate ordering
// the way a byte-wise comparison would.
func TestSortStringUsesCollation(t *testing.T) {
	rows := []row{{name: "banana"}, {name: "Cherry"}, {name: "apple"}}
	col, _ := testColumns.Lookup("name")

	got := names(Sort(rows, col, Asc))
	want := []string{"apple", "banana", "Cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("asc = %v, want %v", got, want)
	}
	got = names(Sort(rows, col, Desc))
	want = []string{"Cherry", "banana", "apple"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("desc = %v, want %v", got, want)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := []row{{"c", 3}, {"a", 1}, {"b", 2}}
	orig := append([]row(nil), rows...)
	col, _ := testColumns.Lookup("score")

	_ = Sort(rows, col, Asc)
	if !reflect.DeepEqual(rows, orig) {
		t.Fatalf("input mutated: %v", rows)
	}
}

func TestSortUnknownKindAndMissingAccessorAreNoOps(t *testing.T) {
	rows := []row{{"c", 3}, {"a", 1}, {"b", 2}}
	for _, col := range []Column[row]{
		{Key: "x", Kind: Kind(42)},
		{Key: "y", Kind: KindNumber},
		{Key: "z", Kind: KindString},
	} {
		got := Sort(rows, col, Asc)
		if !reflect.DeepEqual(got, rows) {
			t.Fatalf("column %s reordered rows: %v", col.Key, names(got))
		}
	}
}

func TestSortNaNComparesEqual(t *testing.T) {
	col, _ := testColumns.Lookup("score")
	if c := col.compare(row{score: math.NaN()}, row{score: 1}); c != 0 {
		t.Fatalf("NaN compare = %d, want 0", c)
	}
	if c := col.compare(row{score: 2}, row{score: math.NaN()}); c != 0 {
		t.Fatalf("NaN compare = %d, want 0", c)
	}
}

func TestSortByUnknownKeyKeepsOrder(t *testing.T) {
	rows := []row{{"c", 3}, {"a", 1}}
	got := SortBy(rows, testColumns, SortState{Column: "missing", Direction: Desc})
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("got %v", names(got))
	}
	got = SortBy(rows, testColumns, SortState{Column: "score", Direction: Asc})
	if names(got)[0] != "a" {
		t.Fatalf("expected a first, got %v", names(got))
	}
}

func TestSortStateToggle(t *testing.T) {
	tests := []struct {
		name  string
		start SortState
		click string
		want  SortState
	}{
		{"same column asc flips", SortState{"name", Asc}, "name", SortState{"name", Desc}},
		{"same column desc flips", SortState{"name", Desc}, "name", SortState{"name", Asc}},
		{"new column resets asc", SortState{"name", Desc}, "score", SortState{"score", Asc}},
		{"new column from asc", SortState{"name", Asc}, "score", SortState{"score", Asc}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.start
			if got := start.Toggle(tt.click); got != tt.want {
				t.Fatalf("Toggle(%q) = %+v, want %+v", tt.click, got, tt.want)
			}
			if start != tt.start {
				t.Fatalf("Toggle mutated receiver")
			}
		})
	}
}

func TestSortStateIndicator(t *testing.T) {
	s := NewSortState("name")
	if got := s.Indicator("score"); got != "↕" {
		t.Fatalf("inactive indicator = %q", got)
	}
	if got := s.Indicator("name"); got != "↑" {
		t.Fatalf("asc indicator = %q", got)
	}
	if got := s.Toggle("name").Indicator("name"); got != "↓" {
		t.Fatalf("desc indicator = %q", got)
	}
}

func TestCellAndFormatNumber(t *testing.T) {
	col, _ := testColumns.Lookup("score")
	if got := col.Cell(row{score: 0.5}); got != "0.500" {
		t.Fatalf("cell = %q", got)
	}
	if got := FormatNumber(math.NaN()); got != "NaN" {
		t.Fatalf("NaN format = %q", got)
	}
	name, _ := testColumns.Lookup("name")
	if got := name.Cell(row{name: "Lung"}); got != "Lung" {
		t.Fatalf("text cell = %q", got)
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("desc"); err != nil || d != Desc {
		t.Fatalf("ParseDirection(desc) = %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
