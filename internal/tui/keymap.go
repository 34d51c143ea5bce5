package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the non-keypad key bindings of the calculator shell. Keypad
// input (digits, operators, function letters) is matched on the raw rune in
// Update because every printable key is a button.
type KeyMap struct {
	Quit           key.Binding
	Help           key.Binding
	Clear          key.Binding
	Backspace      key.Binding
	Equals         key.Binding
	ToggleSign     key.Binding
	ToggleAngle    key.Binding
	Yank           key.Binding
	MemoryAdd      key.Binding
	MemorySubtract key.Binding
	MemoryRecall   key.Binding
	MemoryClear    key.Binding
	ClearHistory   key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Equals: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter", "equals"),
		),
		ToggleSign: key.NewBinding(
			key.WithKeys("_"),
			key.WithHelp("_", "±"),
		),
		ToggleAngle: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "deg/rad"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy result"),
		),
		MemoryAdd: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "M+"),
		),
		MemorySubtract: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "M-"),
		),
		MemoryRecall: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "MR"),
		),
		MemoryClear: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "MC"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "clear history"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "pgup"),
			key.WithHelp("↑", "scroll history"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "pgdown"),
			key.WithHelp("↓", "scroll history"),
		),
	}
}
