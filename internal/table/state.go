package table

// SortState is the header-click state of one table: the active column and
// its direction. It is a value; transitions return a new state.
type SortState struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// NewSortState starts ascending on column.
func NewSortState(column string) SortState {
	return SortState{Column: column, Direction: Asc}
}

// Toggle applies a click on column. Clicking the active column flips the
// direction; clicking any other column makes it active, ascending.
func (s SortState) Toggle(column string) SortState {
	if s.Column == column {
		if s.Direction == Asc {
			return SortState{Column: column, Direction: Desc}
		}
		return SortState{Column: column, Direction: Asc}
	}
	return SortState{Column: column, Direction: Asc}
}

// Indicator is the header glyph for column under this state.
func (s SortState) Indicator(column string) string {
	if s.Column != column {
		return "↕"
	}
	if s.Direction == Desc {
		return "↓"
	}
	return "↑"
}
