// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/agekey/internal/i18n"
)

type keyMap struct {
	Generate key.Binding
	Switch   key.Binding
	Copy     key.Binding
	Save     key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Generate, km.Copy, km.Save, km.Help, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Generate, km.Switch},
		{km.Copy, km.Save},
		{km.Theme, km.Help, km.Quit},
	}
}

// keyMap implements help.KeyMap
var _ help.KeyMap = keyMap{}

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(
			key.WithKeys("g", "enter"),
			key.WithHelp("g", i18n.T("help.generate")),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "up", "down", "k", "j"),
			key.WithHelp("tab", i18n.T("help.switch")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", i18n.T("help.copy")),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", i18n.T("help.save")),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", i18n.T("help.theme")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help.help")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("help.quit")),
		),
	}
}
