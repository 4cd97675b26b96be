package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Select      key.Binding
	SelectAll   key.Binding
	ClearSelect key.Binding
	Delete      key.Binding
	ToggleState key.Binding
	Filter      key.Binding
	Columns     key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		ClearSelect: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "deselect all"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete selected"),
		),
		ToggleState: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "enable/disable selected"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Columns: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "columns"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
