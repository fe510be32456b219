package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the console.
type keyMap struct {
	// Movement
	Forward     key.Binding
	Backward    key.Binding
	Left        key.Binding
	Right       key.Binding
	Stop        key.Binding
	StopFeature key.Binding

	// Features
	Maya            key.Binding
	ObjectDetection key.Binding
	LineFollowing   key.Binding
	Attendance      key.Binding

	// Endpoint
	EditManual key.Binding
	ToggleMode key.Binding

	// Input
	Confirm key.Binding
	Cancel  key.Binding

	// Global
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Forward: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "Forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "Backward"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "Left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "Right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Stop"),
		),
		StopFeature: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Stop feature"),
		),
		Maya: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Maya"),
		),
		ObjectDetection: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Object detection"),
		),
		LineFollowing: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Line following"),
		),
		Attendance: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Attendance"),
		),
		EditManual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Enter manual IP"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Toggle auto/manual"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// helpRows groups bindings for the help overlay.
func (k keyMap) helpRows() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right, k.Stop, k.StopFeature},
		{k.Maya, k.ObjectDetection, k.LineFollowing, k.Attendance},
		{k.EditManual, k.ToggleMode, k.Help, k.Quit},
	}
}
