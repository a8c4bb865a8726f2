package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	esc         key.Binding
	quit        key.Binding
	reload      key.Binding
	search      key.Binding
	copyValue   key.Binding
	copyLocator key.Binding
	propPrev    key.Binding
	propNext    key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left", "h")),
	right:       key.NewBinding(key.WithKeys("right", "l")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	reload:      key.NewBinding(key.WithKeys("r")),
	search:      key.NewBinding(key.WithKeys("/")),
	copyValue:   key.NewBinding(key.WithKeys("c")),
	copyLocator: key.NewBinding(key.WithKeys("L")),
	propPrev:    key.NewBinding(key.WithKeys("[")),
	propNext:    key.NewBinding(key.WithKeys("]")),
}
