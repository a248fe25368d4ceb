package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the picker.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// View switching
	ViewDays   key.Binding
	ViewMonths key.Binding
	ViewYears  key.Binding

	// Cursor
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Paging
	Prev key.Binding
	Next key.Binding

	Select key.Binding
	Today  key.Binding
	Goto   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		ViewDays: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Day view"),
		),
		ViewMonths: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Month view"),
		),
		ViewYears: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Year view"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),

		Prev: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "Previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "Next page"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Select"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Select today"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Go to date"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Prev, k.Next, k.Select, k.Today, k.Goto},
		{k.ViewDays, k.ViewMonths, k.ViewYears},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
