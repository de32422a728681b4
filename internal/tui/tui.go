// internal/tui/tui.go
// Package tui provides the interactive terminal dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gapdash/internal/dashboard"
	"github.com/mwiater/gapdash/internal/dataset"
	"github.com/mwiater/gapdash/internal/distribution"
	"github.com/mwiater/gapdash/internal/logging"
	"github.com/mwiater/gapdash/internal/table"
	"github.com/mwiater/gapdash/internal/util"
)

// section is the dashboard panel that currently has focus.
type section int

const (
	sectionTasks section = iota
	sectionGroups
	sectionPatterns
)

func (s section) String() string {
	switch s {
	case sectionGroups:
		return "Groups"
	case sectionPatterns:
		return "Patterns"
	default:
		return "Tasks"
	}
}

const (
	maxCellRunes = 18
	barWidth     = 30
	chromeLines  = 12
)

// Options configures the dashboard program.
type Options struct {
	Fetcher dataset.Fetcher
	Sources dashboard.Sources
	View    dashboard.View
}

// model is the Bubble Tea model of the dashboard.
type model struct {
	ctx              context.Context
	fetcher          dataset.Fetcher
	sources          dashboard.Sources
	state            dashboard.State
	focus            section
	taskCol          int
	groupCol         int
	taskColumns      table.Columns[dataset.TaskRecord]
	groupColumns     table.Columns[dataset.GroupedRecord]
	tasks            btable.Model
	groups           btable.Model
	spinner          spinner.Model
	help             help.Model
	keys             keyMap
	width, height    int
	requestStartTime time.Time
}

// initialModel creates the dashboard in its loading state.
func initialModel(ctx context.Context, opts Options) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	styles := btable.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tasks := btable.New(btable.WithFocused(true))
	tasks.SetStyles(styles)
	groups := btable.New()
	groups.SetStyles(styles)

	return &model{
		ctx:              ctx,
		fetcher:          opts.Fetcher,
		sources:          opts.Sources,
		state:            dashboard.NewState(opts.View),
		taskColumns:      dataset.TaskColumns(),
		groupColumns:     dataset.GroupColumns(),
		tasks:            tasks,
		groups:           groups,
		spinner:          s,
		help:             help.New(),
		keys:             defaultKeyMap(),
		requestStartTime: time.Now(),
	}
}

// dataLoadedMsg carries both datasets of one load generation.
type dataLoadedMsg struct {
	generation int
	data       dashboard.Data
}

// dataLoadErr is sent when a load generation fails.
type dataLoadErr struct {
	generation int
	error
}

// loadDataCmd fetches, parses and aggregates both datasets.
func loadDataCmd(ctx context.Context, fetcher dataset.Fetcher, sources dashboard.Sources, generation int) tea.Cmd {
	return func() tea.Msg {
		data, err := dashboard.Load(ctx, fetcher, sources)
		if err != nil {
			return dataLoadErr{generation: generation, error: err}
		}
		return dataLoadedMsg{generation: generation, data: data}
	}
}

// Init starts the spinner and the first load.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDataCmd(m.ctx, m.fetcher, m.sources, m.state.Generation()))
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.state.Phase() {
		case dashboard.PhaseFailed:
			if key.Matches(msg, m.keys.Retry) {
				return m, m.retry()
			}
			return m, nil
		case dashboard.PhaseReady:
			return m.updateReady(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case dataLoadedMsg:
		m.state = m.state.Loaded(msg.generation, msg.data)
		m.sync()
		return m, nil

	case dataLoadErr:
		m.state = m.state.Failed(msg.generation, msg.error)
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase() != dashboard.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) retry() tea.Cmd {
	m.state = m.state.Retry()
	m.requestStartTime = time.Now()
	logging.LogEvent("Retrying data load (generation %d)", m.state.Generation())
	return tea.Batch(m.spinner.Tick, loadDataCmd(m.ctx, m.fetcher, m.sources, m.state.Generation()))
}

func (m *model) updateReady(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchView):
		m.state = m.state.SwitchView(m.state.View().Other())
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Tasks):
		m.setFocus(sectionTasks)
		return m, nil
	case key.Matches(msg, m.keys.Groups):
		m.setFocus(sectionGroups)
		return m, nil
	case key.Matches(msg, m.keys.Patterns):
		m.setFocus(sectionPatterns)
		return m, nil
	case key.Matches(msg, m.keys.NextFilter):
		m.state = m.state.CyclePatternFilter(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevFilter):
		m.state = m.state.CyclePatternFilter(-1)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.sortSelected()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case sectionTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case sectionGroups:
		m.groups, cmd = m.groups.Update(msg)
	}
	return m, cmd
}

func (m *model) setFocus(s section) {
	m.focus = s
	m.tasks.Blur()
	m.groups.Blur()
	switch s {
	case sectionTasks:
		m.tasks.Focus()
	case sectionGroups:
		m.groups.Focus()
	}
}

// moveColumn shifts the header cursor. On the patterns panel it steps the
// cancer filter instead.
func (m *model) moveColumn(delta int) {
	switch m.focus {
	case sectionTasks:
		m.taskCol = wrap(m.taskCol+delta, len(m.taskColumns))
	case sectionGroups:
		m.groupCol = wrap(m.groupCol+delta, len(m.groupColumns))
	case sectionPatterns:
		m.state = m.state.CyclePatternFilter(delta)
		return
	}
	m.sync()
}

func (m *model) sortSelected() {
	switch m.focus {
	case sectionTasks:
		m.state = m.state.SortTasks(m.taskColumns[m.taskCol].Key)
	case sectionGroups:
		m.state = m.state.SortGroups(m.groupColumns[m.groupCol].Key)
	default:
		return
	}
	m.sync()
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (m *model) resize() {
	h := util.Max(m.height-chromeLines, 5)
	m.tasks.SetHeight(h)
	m.groups.SetHeight(h)
	if m.width > 0 {
		m.tasks.SetWidth(m.width - 2)
		m.groups.SetWidth(m.width - 2)
	}
}

// sync rebuilds both tables from the current state.
func (m *model) sync() {
	taskCols, taskRows := buildTable(m.taskColumns, m.state.TaskRows(), m.state.TaskSort(), m.taskCol)
	m.tasks.SetColumns(taskCols)
	m.tasks.SetRows(taskRows)

	groupCols, groupRows := buildTable(m.groupColumns, m.state.GroupRows(), m.state.GroupSort(), m.groupCol)
	m.groups.SetColumns(groupCols)
	m.groups.SetRows(groupRows)
	m.resize()
}

// buildTable renders rows into bubbles table columns. The header carries the
// sort indicator, and the column under the cursor is marked with ›.
func buildTable[R any](cols table.Columns[R], rows []R, sort table.SortState, cursor int) ([]btable.Column, []btable.Row) {
	out := make([]btable.Column, len(cols))
	for i, c := range cols {
		title := fmt.Sprintf("%s %s", c.Label, sort.Indicator(c.Key))
		if i == cursor {
			title = "›" + title
		}
		out[i] = btable.Column{Title: title, Width: lipgloss.Width(title)}
	}

	tableRows := make([]btable.Row, len(rows))
	for r, row := range rows {
		cells := make(btable.Row, len(cols))
		for i, c := range cols {
			cell := util.TruncateRunes(c.Cell(row), maxCellRunes)
			cells[i] = cell
			if w := lipgloss.Width(cell); w > out[i].Width {
				out[i].Width = w
			}
		}
		tableRows[r] = cells
	}
	return out, tableRows
}

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state.Phase() {
	case dashboard.PhaseFailed:
		return errorStyle.Render(fmt.Sprintf("⚠ Error loading data\n\nError: %v\n\n%s",
			m.state.Err(), mutedStyle.Render("press r to retry, q to quit")))
	case dashboard.PhaseLoading:
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		return fmt.Sprintf("\n  %s Loading cancer analysis data... %ss\n", m.spinner.View(), timer)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Cancer Performance Gap Analysis") + "\n")
	b.WriteString(m.headerView() + "\n\n")

	switch m.focus {
	case sectionTasks:
		b.WriteString(m.tasksView())
	case sectionGroups:
		b.WriteString(m.groupsView())
	case sectionPatterns:
		b.WriteString(m.patternsView())
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *model) headerView() string {
	var tabs []string
	for _, v := range dashboard.Views {
		tabs = append(tabs, tabStyle(v, v == m.state.View()).Render(v.Tab()))
	}
	var sections []string
	for _, s := range []section{sectionTasks, sectionGroups, sectionPatterns} {
		style := sectionStyle
		if s == m.focus {
			style = activeSect
		}
		sections = append(sections, style.Render(fmt.Sprintf("%d %s", int(s)+1, s)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, sections...)...)
}

func (m *model) tasksView() string {
	view := m.state.View()
	rows := m.state.TaskRows()
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Task-Level Data (%s)", view.Title())) + "\n")
	b.WriteString(m.tasks.View() + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Total records: %d", len(rows))) + "\n")
	return b.String()
}

func (m *model) groupsView() string {
	view := m.state.View()
	rows := m.state.GroupRows()
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Cancer-Grouped Data (%s)", view.Title())) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Total Cancer Types: %d", len(rows))) + "\n")
	b.WriteString(m.groups.View() + "\n")
	if c := m.groups.Cursor(); c >= 0 && c < len(rows) {
		sel := rows[c]
		badge := renderTierBadge(table.FormatNumber(sel.Pattern111Percentage)+"%", dashboard.PatternTier(sel.Pattern111Percentage))
		b.WriteString(fmt.Sprintf("%s 111 Pattern: %s\n", sel.CancerName, badge))
	}
	return b.String()
}

func (m *model) patternsView() string {
	d := m.state.Distribution()
	var b strings.Builder
	b.WriteString(headingStyle.Render("Pattern Distribution by Cancer Type") + "\n")

	filter := d.Filter
	if filter == distribution.All {
		filter = "All Cancer Types"
	}
	b.WriteString(fmt.Sprintf("Cancer Type: %s   %s\n\n", filter, mutedStyle.Render(fmt.Sprintf("Total Tasks: %d", d.Total))))

	if d.Total == 0 {
		b.WriteString(mutedStyle.Render("No data available for selected cancer type") + "\n\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-8s %6s %8s  %s", "PATTERN", "COUNT", "PERCENT", "VISUAL")) + "\n")
	for i, label := range d.Labels {
		pct := d.Percentage(i)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(distribution.Palette[i])).Render(util.Bar(pct, barWidth))
		b.WriteString(fmt.Sprintf("%-8s %6d %8s  %s\n", label, d.Counts[i], distribution.FormatPercentage(pct), bar))
	}
	return b.String()
}

// Start runs the dashboard until the user quits or ctx is cancelled.
func Start(ctx context.Context, opts Options) error {
	m := initialModel(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
