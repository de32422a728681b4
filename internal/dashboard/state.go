package dashboard

import (
	"github.com/mwiater/gapdash/internal/dataset"
	"github.com/mwiater/gapdash/internal/distribution"
	"github.com/mwiater/gapdash/internal/table"
)

// Phase is the load lifecycle of a State.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "loading"
	}
}

// State is the immutable dashboard state. Every transition returns a new
// value. Sort and filter choices are shared by both views and survive view
// switches and retries.
type State struct {
	phase      Phase
	generation int
	data       Data
	err        error
	view       View
	taskSort   table.SortState
	groupSort  table.SortState
	pattern    string
}

// NewState starts loading with both tables sorted by cancer type ascending
// and no pattern filter.
func NewState(view View) State {
	if view != ViewNoBagging {
		view = ViewBagging
	}
	return State{
		phase:      PhaseLoading,
		generation: 1,
		view:       view,
		taskSort:   table.NewSortState(dataset.FieldCancerName),
		groupSort:  table.NewSortState(dataset.FieldCancerName),
		pattern:    distribution.All,
	}
}

// Phase reports whether data is loading, ready or failed.
func (s State) Phase() Phase { return s.phase }

// Err is the load failure in PhaseFailed, nil otherwise.
func (s State) Err() error { return s.err }

// View is the active dataset view.
func (s State) View() View { return s.view }

// Data holds both loaded datasets once ready.
func (s State) Data() Data { return s.data }

// TaskSort is the sort state of the task table.
func (s State) TaskSort() table.SortState { return s.taskSort }

// GroupSort is the sort state of the grouped table.
func (s State) GroupSort() table.SortState { return s.groupSort }

// PatternFilter is the cancer type the distribution is restricted to, or
// distribution.All.
func (s State) PatternFilter() string { return s.pattern }

// Generation identifies the load a result must belong to. Results tagged
// with an older generation are ignored.
func (s State) Generation() int { return s.generation }

// Loaded moves a loading state to ready. Stale or unexpected results leave s
// unchanged.
func (s State) Loaded(generation int, data Data) State {
	if s.phase != PhaseLoading || generation != s.generation {
		return s
	}
	s.phase = PhaseReady
	s.data = data
	s.err = nil
	return s
}

// Failed moves a loading state to failed. Stale results leave s unchanged.
func (s State) Failed(generation int, err error) State {
	if s.phase != PhaseLoading || generation != s.generation {
		return s
	}
	s.phase = PhaseFailed
	s.data = Data{}
	s.err = err
	return s
}

// Retry discards any loaded data and starts a new load generation.
func (s State) Retry() State {
	s.phase = PhaseLoading
	s.generation++
	s.data = Data{}
	s.err = nil
	return s
}

// SwitchView selects v without reloading anything.
func (s State) SwitchView(v View) State {
	if v != ViewNoBagging {
		v = ViewBagging
	}
	s.view = v
	return s
}

// SortTasks applies a header click on column to the task table.
func (s State) SortTasks(column string) State {
	s.taskSort = s.taskSort.Toggle(column)
	return s
}

// SortGroups applies a header click on column to the grouped table.
func (s State) SortGroups(column string) State {
	s.groupSort = s.groupSort.Toggle(column)
	return s
}

// WithTaskSort replaces the task sort outright, e.g. from a URL.
func (s State) WithTaskSort(sort table.SortState) State {
	s.taskSort = sort
	return s
}

// WithGroupSort replaces the grouped table's sort outright.
func (s State) WithGroupSort(sort table.SortState) State {
	s.groupSort = sort
	return s
}

// FilterPatterns restricts the distribution to one cancer type, or to every
// record for distribution.All or an empty key.
func (s State) FilterPatterns(key string) State {
	if key == "" {
		key = distribution.All
	}
	s.pattern = key
	return s
}

// CyclePatternFilter steps through PatternOptions by delta, wrapping at both
// ends. A filter not among the options restarts from All.
func (s State) CyclePatternFilter(delta int) State {
	opts := s.PatternOptions()
	idx := 0
	for i, o := range opts {
		if o == s.pattern {
			idx = i
			break
		}
	}
	n := len(opts)
	idx = ((idx+delta)%n + n) % n
	s.pattern = opts[idx]
	return s
}

func (s State) current() Dataset {
	return s.data.For(s.view)
}

// TaskRows is the current view's task table in sort order.
func (s State) TaskRows() []dataset.TaskRecord {
	return table.SortBy(s.current().Tasks, dataset.TaskColumns(), s.taskSort)
}

// GroupRows is the current view's grouped table in sort order.
func (s State) GroupRows() []dataset.GroupedRecord {
	return table.SortBy(s.current().Groups, dataset.GroupColumns(), s.groupSort)
}

// Distribution buckets the current view's tasks under the pattern filter.
func (s State) Distribution() distribution.Distribution {
	return distribution.Bucket(s.current().Tasks, s.pattern)
}

// PatternOptions lists the filter choices of the current view.
func (s State) PatternOptions() []string {
	return distribution.Options(s.current().Tasks)
}
