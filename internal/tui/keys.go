package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	cycle    key.Binding
	reveal   key.Binding
	copy     key.Binding
	save     key.Binding
	saveYAML key.Binding
	refresh  key.Binding
	baseURL  key.Binding
	version  key.Binding
	remember key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	cycle:    key.NewBinding(key.WithKeys(" ")),
	reveal:   key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	save:     key.NewBinding(key.WithKeys("s")),
	saveYAML: key.NewBinding(key.WithKeys("ctrl+s")),
	refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
	baseURL:  key.NewBinding(key.WithKeys("b")),
	version:  key.NewBinding(key.WithKeys("v")),
	remember: key.NewBinding(key.WithKeys("ctrl+t")),
}
