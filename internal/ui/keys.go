package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the update dialog's keyboard shortcuts.
// Related bindings (Up/Down, Next/Prev) share help text since they are
// shown as a single footer hint.
type KeyMap struct {
	// Focus
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding

	// Notes scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Button hotkeys, honored only when the button is on screen
	Download        key.Binding
	SkipVersion     key.Binding
	NotNow          key.Binding
	CloseAndInstall key.Binding

	CopyLink key.Binding
}

// DefaultKeyMap returns the default dialog keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("⇥", "Focus"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("⇥", "Focus"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("⏎", "Select"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑↓", "Scroll"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("PgDn", "Page down"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Download"),
		),
		SkipVersion: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Skip"),
		),
		NotNow: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "Not now"),
		),
		CloseAndInstall: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Install"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy link"),
		),
	}
}
