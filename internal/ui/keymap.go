package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the window's accelerator table.
type keyMap struct {
	Quit    key.Binding
	Suspend key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+w", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
	}
}
