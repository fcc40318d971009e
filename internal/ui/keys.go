package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tareas/internal/config"
)

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Retry     key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:      binding("quit", k.Quit, "ctrl+c"),
		NextTab:   binding("next tab", k.NextTab),
		PrevTab:   binding("prev tab", k.PrevTab),
		Up:        binding("up", k.Up, "up"),
		Down:      binding("down", k.Down, "down"),
		Left:      binding("less", k.Left, "left"),
		Right:     binding("more", k.Right, "right"),
		FocusNext: binding("next field", k.FocusNext),
		FocusPrev: binding("prev field", k.FocusPrev),
		Toggle:    binding("toggle", k.Toggle),
		Delete:    binding("delete", k.Delete),
		Confirm:   binding("select", k.Confirm),
		Cancel:    binding("leave field", k.Cancel),
		Retry:     binding("retry", k.Retry),
	}
}

// binding keeps the configured key first so the help bar shows it.
func binding(desc, primary string, extra ...string) key.Binding {
	keys := []string{primary}
	for _, e := range extra {
		if e != primary {
			keys = append(keys, e)
		}
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(primary), desc),
	)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
