package widget

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	newTask   key.Binding
	confirm   key.Binding
	cancel    key.Binding
	up        key.Binding
	down      key.Binding
	complete  key.Binding
	remove    key.Binding
	toggleBrk key.Binding
	sleep     key.Binding
	reset     key.Binding
	resetTime key.Binding
	save      key.Binding
	load      key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

var defaultKeymap = keymap{
	newTask: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new task"),
	),
	confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove"),
	),
	toggleBrk: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "break"),
	),
	sleep: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sleep"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	resetTime: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset timers"),
	),
	save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	load: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "load"),
	),
	quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	forceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}
