package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	billing key.Binding
	access  key.Binding
	refresh key.Binding
	reveal  key.Binding
	clear   key.Binding
	paste   key.Binding

	// global keys handled by RootModel
	interrupt key.Binding
	about     key.Binding

	// cursor keys are swallowed by the access-code surface
	cursor key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q")),
	billing: key.NewBinding(key.WithKeys("b")),
	access:  key.NewBinding(key.WithKeys("a")),
	refresh: key.NewBinding(key.WithKeys("r")),
	reveal:  key.NewBinding(key.WithKeys("ctrl+e")),
	clear:   key.NewBinding(key.WithKeys("ctrl+l")),
	paste:   key.NewBinding(key.WithKeys("ctrl+v")),

	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	about:     key.NewBinding(key.WithKeys("v")),

	cursor: key.NewBinding(key.WithKeys(
		"left", "right", "home", "end", "ctrl+a", "ctrl+b", "ctrl+f",
		"alt+left", "alt+right", "ctrl+left", "ctrl+right", "alt+b", "alt+f",
		"delete", "ctrl+d", "ctrl+k", "alt+d", "alt+delete",
	)),
}
