package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard bindings and feeds the help footer.
type keyMap struct {
	SwitchView key.Binding
	Tasks      key.Binding
	Groups     key.Binding
	Patterns   key.Binding
	Left       key.Binding
	Right      key.Binding
	Sort       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Retry      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "bagging/no bagging")),
		Tasks:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tasks")),
		Groups:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "groups")),
		Patterns:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "patterns")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Sort:       key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort")),
		NextFilter: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next cancer")),
		PrevFilter: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev cancer")),
		Retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchView, k.Tasks, k.Groups, k.Patterns, k.Sort, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchView, k.Tasks, k.Groups, k.Patterns},
		{k.Left, k.Right, k.Sort},
		{k.PrevFilter, k.NextFilter, k.Retry, k.Quit},
	}
}
