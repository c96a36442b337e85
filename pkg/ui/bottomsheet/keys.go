package bottomsheet

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Dismiss key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
}

var keys = keyMap{
	Dismiss: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "close"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
}
