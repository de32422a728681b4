// internal/report/report.go
// Package report renders the dashboard as a standalone HTML page.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/mwiater/gapdash/internal/dashboard"
	"github.com/mwiater/gapdash/internal/dataset"
	"github.com/mwiater/gapdash/internal/distribution"
	"github.com/mwiater/gapdash/internal/table"
)

// LinkFunc maps a state to the URL that shows it. With a LinkFunc, headers,
// tabs and filter options become links and only the state's own view and
// filter are rendered.
type LinkFunc func(dashboard.State) string

// Options tunes a rendered page.
type Options struct {
	Title       string
	GeneratedAt time.Time
	Link        LinkFunc
	ChartWidth  int
	ChartHeight int
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Cancer Performance Gap Analysis"
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	if o.ChartWidth <= 0 {
		o.ChartWidth = 420
	}
	if o.ChartHeight <= 0 {
		o.ChartHeight = 420
	}
	return o
}

type pageData struct {
	Title     string
	Generated string
	Linked    bool
	Tabs      []tabData
	Panels    []panelData
	// SummaryJSON is the per-view record count summary for scripts.
	SummaryJSON template.JS
}

type tabData struct {
	View   string
	Label  string
	Href   string
	Active bool
}

type headerData struct {
	Label     string
	Indicator string
	Href      string
	Active    bool
}

type groupRowData struct {
	Cells []string
	Badge string
	Tier  string
}

type optionData struct {
	Value  string
	Label  string
	Href   string
	Active bool
}

type distRowData struct {
	Label   string
	Count   int
	Percent string
	Width   string
	Color   string
}

type distData struct {
	Filter string
	Label  string
	Active bool
	Total  int
	Chart  template.HTML
	Rows   []distRowData
}

type panelData struct {
	View         string
	Title        string
	Active       bool
	TaskHeaders  []headerData
	TaskRows     [][]string
	GroupHeaders []headerData
	GroupRows    []groupRowData
	Options      []optionData
	Dists        []distData
}

// Render writes the page for s. Without a LinkFunc every view and every
// cancer filter is rendered, switchable client-side; this is the offline
// report. With one, only s's view and filter are rendered.
func Render(w io.Writer, s dashboard.State, opts Options) error {
	if s.Phase() != dashboard.PhaseReady {
		return fmt.Errorf("render report: dashboard is %s", s.Phase())
	}
	opts = opts.withDefaults()

	page := pageData{
		Title:     opts.Title,
		Generated: opts.GeneratedAt.Format(time.RFC1123),
		Linked:    opts.Link != nil,
	}
	summary := make(map[string]int)
	for _, v := range dashboard.Views {
		vs := s.SwitchView(v)
		active := v == s.View()
		tab := tabData{View: string(v), Label: v.Tab(), Active: active}
		if opts.Link != nil {
			tab.Href = opts.Link(vs)
		}
		page.Tabs = append(page.Tabs, tab)
		summary[string(v)] = len(vs.TaskRows())

		if opts.Link != nil && !active {
			continue
		}
		panel, err := buildPanel(vs, active, opts)
		if err != nil {
			return err
		}
		page.Panels = append(page.Panels, panel)
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	page.SummaryJSON = template.JS(payload)

	return pageTemplate.Execute(w, page)
}

// Generate renders the offline report over both loaded datasets.
func Generate(data dashboard.Data, view dashboard.View, opts Options) (string, error) {
	s := dashboard.NewState(view)
	s = s.Loaded(s.Generation(), data)
	opts.Link = nil

	var buf bytes.Buffer
	if err := Render(&buf, s, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildPanel(s dashboard.State, active bool, opts Options) (panelData, error) {
	v := s.View()
	p := panelData{View: string(v), Title: v.Title(), Active: active}

	taskCols := dataset.TaskColumns()
	p.TaskHeaders = headers(taskCols.Keys(), labels(taskCols), s.TaskSort(), opts.Link, s.SortTasks)
	for _, r := range s.TaskRows() {
		row := make([]string, len(taskCols))
		for i, c := range taskCols {
			row[i] = c.Cell(r)
		}
		p.TaskRows = append(p.TaskRows, row)
	}

	groupCols := dataset.GroupColumns()
	p.GroupHeaders = headers(groupCols.Keys(), labels(groupCols), s.GroupSort(), opts.Link, s.SortGroups)
	last := len(groupCols) - 1
	for _, r := range s.GroupRows() {
		row := groupRowData{Tier: dashboard.PatternTier(r.Pattern111Percentage).Color()}
		for i, c := range groupCols {
			if i == last {
				row.Badge = c.Cell(r) + "%"
				continue
			}
			row.Cells = append(row.Cells, c.Cell(r))
		}
		p.GroupRows = append(p.GroupRows, row)
	}

	filters := s.PatternOptions()
	if opts.Link != nil {
		filters = []string{s.PatternFilter()}
	}
	for _, key := range s.PatternOptions() {
		o := optionData{Value: key, Label: optionLabel(key), Active: key == s.PatternFilter()}
		if opts.Link != nil {
			o.Href = opts.Link(s.FilterPatterns(key))
		}
		p.Options = append(p.Options, o)
	}
	for _, key := range filters {
		fs := s.FilterPatterns(key)
		d, err := buildDist(fs.Distribution(), key == s.PatternFilter(), opts)
		if err != nil {
			return panelData{}, err
		}
		p.Dists = append(p.Dists, d)
	}
	return p, nil
}

func labels[R any](cols table.Columns[R]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}

func headers(keys, names []string, sort table.SortState, link LinkFunc, toggle func(string) dashboard.State) []headerData {
	out := make([]headerData, len(keys))
	for i, k := range keys {
		h := headerData{Label: names[i], Indicator: sort.Indicator(k), Active: sort.Column == k}
		if link != nil {
			h.Href = link(toggle(k))
		}
		out[i] = h
	}
	return out
}

func optionLabel(key string) string {
	if key == distribution.All {
		return "All Cancer Types"
	}
	return key
}

func buildDist(d distribution.Distribution, active bool, opts Options) (distData, error) {
	out := distData{Filter: d.Filter, Label: optionLabel(d.Filter), Active: active, Total: d.Total}
	for i, label := range d.Labels {
		pct := d.Percentage(i)
		out.Rows = append(out.Rows, distRowData{
			Label:   label,
			Count:   d.Counts[i],
			Percent: distribution.FormatPercentage(pct),
			Width:   fmt.Sprintf("%.1f", math.Min(pct, 100)),
			Color:   distribution.Palette[i],
		})
	}

	var svg bytes.Buffer
	err := distribution.Render(&svg, d, distribution.ChartOptions{
		Width:  opts.ChartWidth,
		Height: opts.ChartHeight,
		Format: distribution.FormatSVG,
	})
	switch {
	case errors.Is(err, distribution.ErrNoData):
	case err != nil:
		return distData{}, err
	default:
		out.Chart = template.HTML(svg.String())
	}
	return out, nil
}
