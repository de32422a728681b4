package server

import (
	"net/url"

	"github.com/mwiater/gapdash/internal/dashboard"
	"github.com/mwiater/gapdash/internal/table"
)

// Query parameter names shared by the HTML page and the JSON API.
const (
	paramView      = "view"
	paramTaskSort  = "tsort"
	paramTaskDir   = "tdir"
	paramGroupSort = "gsort"
	paramGroupDir  = "gdir"
	paramSort      = "sort"
	paramDir       = "dir"
	paramCancer    = "cancer"
)

// encodeState renders s as a relative URL for the HTML dashboard.
func encodeState(s dashboard.State) string {
	q := url.Values{}
	q.Set(paramView, string(s.View()))
	q.Set(paramTaskSort, s.TaskSort().Column)
	q.Set(paramTaskDir, string(s.TaskSort().Direction))
	q.Set(paramGroupSort, s.GroupSort().Column)
	q.Set(paramGroupDir, string(s.GroupSort().Direction))
	q.Set(paramCancer, s.PatternFilter())
	return "/?" + q.Encode()
}

// decodeState applies the query onto base. Unknown or malformed values keep
// base's setting.
func decodeState(base dashboard.State, q url.Values) dashboard.State {
	s := base
	if v, err := dashboard.ParseView(q.Get(paramView)); err == nil && q.Has(paramView) {
		s = s.SwitchView(v)
	}
	s = s.WithTaskSort(sortFromQuery(s.TaskSort(), q.Get(paramTaskSort), q.Get(paramTaskDir)))
	s = s.WithGroupSort(sortFromQuery(s.GroupSort(), q.Get(paramGroupSort), q.Get(paramGroupDir)))
	if c := q.Get(paramCancer); c != "" {
		s = s.FilterPatterns(c)
	}
	return s
}

func sortFromQuery(current table.SortState, column, dir string) table.SortState {
	if column != "" {
		current.Column = column
	}
	if dir != "" {
		if d, err := table.ParseDirection(dir); err == nil {
			current.Direction = d
		}
	}
	return current
}
