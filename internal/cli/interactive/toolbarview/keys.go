package toolbarview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Language        key.Binding
	Filter          key.Binding
	Close           key.Binding
	TogglePage      key.Binding
	ListPage        key.Binding
	AIPage          key.Binding
	RecentCommit    key.Binding
	DevelopmentTime key.Binding
	Up              key.Binding
	Down            key.Binding
	Choose          key.Binding
	Dismiss         key.Binding
	Help            key.Binding
}

var keys = keyMap{
	Language: key.NewBinding(
		key.WithKeys("l", "L"),
		key.WithHelp("l", "language"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f", "F"),
		key.WithHelp("f", "filter"),
	),
	Close: key.NewBinding(
		key.WithKeys("x", "X"),
		key.WithHelp("x", "close"),
	),
	TogglePage: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "list/ai"),
	),
	ListPage: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "list"),
	),
	AIPage: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "ai"),
	),
	RecentCommit: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "by recent commit"),
	),
	DevelopmentTime: key.NewBinding(
		key.WithKeys("d", "D"),
		key.WithHelp("d", "by development time"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "prev"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "next"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "select"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "dismiss"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Language, k.Filter, k.Close, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Language, k.Filter, k.Close},
		{k.TogglePage, k.ListPage, k.AIPage},
		{k.RecentCommit, k.DevelopmentTime},
		{k.Up, k.Down, k.Choose, k.Dismiss},
		{k.Help},
	}
}
