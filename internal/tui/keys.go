package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	run  key.Binding
	more key.Binding
	less key.Binding
	copy key.Binding
	info key.Binding
	esc  key.Binding
	quit key.Binding
}

var keys = keyMap{
	run:  key.NewBinding(key.WithKeys("r", "enter")),
	more: key.NewBinding(key.WithKeys("+", "=", "up", "k")),
	less: key.NewBinding(key.WithKeys("-", "_", "down", "j")),
	copy: key.NewBinding(key.WithKeys("c")),
	info: key.NewBinding(key.WithKeys("v")),
	esc:  key.NewBinding(key.WithKeys("esc")),
	quit: key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

const hotKeysHelp = "r: run  +/-: shots  c: copy counts  v: about  q: quit"
