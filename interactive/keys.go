// SPDX-License-Identifier: MIT

package interactive

import "github.com/charmbracelet/bubbles/key"

// keyMap binds every action of the view. It satisfies help.KeyMap.
type keyMap struct {
	Up, Down     key.Binding
	Toggle       key.Binding
	Left, Right  key.Binding
	TiltUp, TiltDown key.Binding
	More, Less   key.Binding
	Kind         key.Binding
	Accept       key.Binding
	Abort        key.Binding
	Help         key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous class"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next class"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "add/remove class"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "rotate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "rotate right"),
		),
		TiltUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "tilt up"),
		),
		TiltDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "tilt down"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise perc"),
		),
		Less: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower perc"),
		),
		Kind: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "partition kernel"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Abort: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Left, k.Right, k.Accept, k.Abort, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Left, k.Right, k.TiltUp, k.TiltDown},
		{k.More, k.Less, k.Kind},
		{k.Accept, k.Abort, k.Help},
	}
}
