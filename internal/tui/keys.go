package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/tuitap/internal/locale"
)

// KeyMap defines the keyboard bindings.
type KeyMap struct {
	Start key.Binding
	Back  key.Binding
	Quit  key.Binding
}

func newKeyMap(msgs locale.Messages) KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", msgs.HelpStart),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", msgs.HelpBack),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", msgs.HelpQuit),
		),
	}
}
