// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package theme

import "github.com/charmbracelet/lipgloss"

// Styles defines the reusable lipgloss styles for the key form.
type Styles struct {
	Mode    Mode
	Palette Palette

	Doc   lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Hint  lipgloss.Style

	// Key fields
	Field        lipgloss.Style
	FocusedField lipgloss.Style
	Placeholder  lipgloss.Style
	Key          lipgloss.Style

	// Buttons
	Button         lipgloss.Style
	ActiveButton   lipgloss.Style
	DisabledButton lipgloss.Style

	// Status line
	Status        lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style

	Dialog lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// New builds the styles for a resolved mode.
func New(m Mode) Styles {
	p := PaletteFor(m)

	field := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	button := lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 3)

	return Styles{
		Mode:    m,
		Palette: p,

		Doc:   lipgloss.NewStyle().Margin(1, 2),
		Title: lipgloss.NewStyle().Foreground(p.Primary).Bold(true).MarginBottom(1),
		Label: lipgloss.NewStyle().Foreground(p.TextPrimary).Bold(true),
		Hint:  lipgloss.NewStyle().Foreground(p.TextSecondary).Italic(true).PaddingLeft(1),

		Field:        field,
		FocusedField: field.BorderForeground(p.Primary),
		Placeholder:  lipgloss.NewStyle().Foreground(p.TextSecondary),
		Key:          lipgloss.NewStyle().Foreground(p.TextPrimary),

		Button:         button,
		ActiveButton:   button.Foreground(p.CardBg).Background(p.TextPrimary).BorderForeground(p.TextPrimary).Bold(true),
		DisabledButton: button.Foreground(p.TextDisabled).BorderForeground(p.TextDisabled),

		Status:        lipgloss.NewStyle().Foreground(p.TextSecondary).Padding(1, 0, 0, 0),
		StatusSuccess: lipgloss.NewStyle().Foreground(p.Success).Padding(1, 0, 0, 0),
		StatusError:   lipgloss.NewStyle().Foreground(p.Error).Padding(1, 0, 0, 0),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Error).
			Padding(1, 2).
			Width(60),
		Error: lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Help:  lipgloss.NewStyle().Foreground(p.TextSecondary),
	}
}
