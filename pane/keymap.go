package pane

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the pane key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Enter key.Binding
	Tab   key.Binding

	Save key.Binding
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}
