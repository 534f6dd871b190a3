package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer key bindings.
type KeyMap struct {
	Dismiss key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the default bindings. Any dismiss key closes the
// figure and lets the run continue; Quit stops the run.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("enter", " ", "q", "esc"),
			key.WithHelp("enter/q", "close figure"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss, k.Quit}, {k.Help}}
}
