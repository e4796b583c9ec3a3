package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	NextQuad    key.Binding
	PrevPeriod  key.Binding
	NextPeriod  key.Binding
	Today       key.Binding
	ToggleView  key.Binding
	JumpDate    key.Binding
	FocusGoals  key.Binding
	ReportClose key.Binding

	// Task actions
	Start    key.Binding
	Done     key.Binding
	Cancel   key.Binding
	Progress key.Binding
	Note     key.Binding
	Delete   key.Binding
	Grab     key.Binding

	// Task management
	New     key.Binding
	AddGoal key.Binding
	Toggle  key.Binding // Toggle the selected goal
	Copy    key.Binding

	// View
	Refresh key.Binding
	Report  key.Binding
	Help    key.Binding

	// General
	Quit    key.Binding
	Enter   key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		NextQuad: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next quadrant"),
		),
		PrevPeriod: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev period"),
		),
		NextPeriod: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next period"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "daily/weekly"),
		),
		JumpDate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to date"),
		),
		FocusGoals: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "goals"),
		),
		ReportClose: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Done: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "done"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cancel task"),
		),
		Progress: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "progress"),
		),
		Note: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "note"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		AddGoal: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add goal"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle goal"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Report: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "report"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPeriod, k.NextPeriod, k.ToggleView, k.New, k.Grab, k.Start, k.Done, k.Delete, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.NextQuad},                     // Cards
		{k.PrevPeriod, k.NextPeriod, k.Today, k.ToggleView, k.JumpDate}, // Periods
		{k.Start, k.Done, k.Cancel, k.Progress, k.Note, k.Delete},       // Task actions
		{k.Grab, k.New, k.Copy, k.FocusGoals, k.AddGoal, k.Toggle},      // Board
		{k.Refresh, k.Report, k.Help, k.Quit},                           // View & general
	}
}

// GrabHelp returns keybindings shown while a card is grabbed.
func (k KeyMap) GrabHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		k.Escape,
	}
}
