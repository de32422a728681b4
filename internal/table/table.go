// internal/table/table.go
// Package table implements a generic sortable table: column descriptors with a
// declared value kind, a pure sort over a copy of the rows, and the
// header-click state machine that drives it.
package table

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind declares how a column's values are compared.
type Kind int

const (
	// KindString columns compare with locale collation.
	KindString Kind = iota
	// KindNumber columns compare numerically.
	KindNumber
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Direction is the sort order of the active column.
type Direction string

const (
	// Asc sorts smallest first.
	Asc Direction = "asc"
	// Desc sorts largest first.
	Desc Direction = "desc"
)

// ParseDirection maps "asc"/"desc" to a Direction. Anything else is an error.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Asc, Desc:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown sort direction %q (use asc|desc)", s)
	}
}

// Column describes one sortable column over rows of type R. Text is used for
// KindString columns and Number for KindNumber columns.
type Column[R any] struct {
	Key    string
	Label  string
	Kind   Kind
	Text   func(R) string
	Number func(R) float64
}

// Cell renders the column value of row for display. Numbers use three
// decimals and NaN renders as "NaN".
func (c Column[R]) Cell(row R) string {
	switch c.Kind {
	case KindNumber:
		if c.Number == nil {
			return ""
		}
		return FormatNumber(c.Number(row))
	default:
		if c.Text == nil {
			return ""
		}
		return c.Text(row)
	}
}

// Columns is an ordered column set.
type Columns[R any] []Column[R]

// Lookup finds the column with the given key.
func (cs Columns[R]) Lookup(key string) (Column[R], bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

// Keys lists the column keys in display order.
func (cs Columns[R]) Keys() []string {
	keys := make([]string, len(cs))
	for i, c := range cs {
		keys[i] = c.Key
	}
	return keys
}

// FormatNumber renders v with three decimals.
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.3f", v)
}

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

// compareText compares two strings with English collation. The collator keeps
// internal buffers, so access is serialized.
func compareText(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// compare orders two rows by the column, ascending. A NaN operand or a column
// without a usable accessor compares equal.
func (c Column[R]) compare(a, b R) int {
	switch c.Kind {
	case KindString:
		if c.Text == nil {
			return 0
		}
		return compareText(c.Text(a), c.Text(b))
	case KindNumber:
		if c.Number == nil {
			return 0
		}
		d := c.Number(a) - c.Number(b)
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

// Sort returns a copy of rows ordered by col in the given direction. The
// input slice is never modified. Ties keep their input order.
func Sort[R any](rows []R, col Column[R], dir Direction) []R {
	out := make([]R, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := col.compare(out[i], out[j])
		if dir == Desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// SortBy looks up the column by key and sorts. Unknown keys return a copy of
// rows in their original order.
func SortBy[R any](rows []R, cols Columns[R], state SortState) []R {
	col, ok := cols.Lookup(state.Column)
	if !ok {
		out := make([]R, len(rows))
		copy(out, rows)
		return out
	}
	return Sort(rows, col, state.Direction)
}
