package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	RowStart  key.Binding
	SheetTop  key.Binding
	RowEnd    key.Binding
	SheetLast key.Binding

	// Columns
	Shrink key.Binding
	Grow   key.Binding

	// Tabs
	PrevTab key.Binding
	NextTab key.Binding

	// Search
	Search key.Binding
	Escape key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Move right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Move down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next cell (wraps)"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous cell (wraps)"),
		),
		RowStart: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First column"),
		),
		SheetTop: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("ctrl+home", "First cell"),
		),
		RowEnd: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last column"),
		),
		SheetLast: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("ctrl+end", "Last cell"),
		),

		Shrink: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "Narrow column"),
		),
		Grow: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "Widen column"),
		),

		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next tab"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search within sheet"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel search / clear selection"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view, one group per
// section of the overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Tab, k.ShiftTab},
		{k.RowStart, k.SheetTop, k.RowEnd, k.SheetLast},
		{k.Shrink, k.Grow, k.PrevTab, k.NextTab},
		{k.Search, k.Escape, k.CycleTheme, k.Help, k.Quit},
	}
}
