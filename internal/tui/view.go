// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/agekey/internal/i18n"
	"github.com/toeirei/agekey/internal/keygen"
)

const defaultFieldWidth = 70

func (m *model) View() string {
	if m.errMsg != "" {
		return m.viewErrorDialog()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("🔑 " + i18n.T("app.title")))
	b.WriteString("\n")
	b.WriteString(m.viewSection(keygen.Identity))
	b.WriteString("\n")
	b.WriteString(m.viewSection(keygen.Recipient))
	b.WriteString("\n")

	if m.saving {
		b.WriteString(m.viewSavePrompt())
	} else {
		b.WriteString(m.viewGenerateButton())
	}
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.Doc.Render(b.String())
}

// fieldWidth fits the longest key on one line; only a narrower terminal
// makes it wrap.
func (m *model) fieldWidth() int {
	w := defaultFieldWidth
	for _, text := range []string{m.pair.Identity, m.pair.Recipient} {
		if n := lipgloss.Width(text) + 2; n > w { // field padding
			w = n
		}
	}
	if avail := m.width - 6; m.width > 0 && avail > 0 && avail < w { // doc margin + field border
		w = avail
	}
	return w
}

func (m *model) viewSection(kind keygen.Kind) string {
	label, hint, placeholder := i18n.T("label.private"), i18n.T("hint.private"), i18n.T("placeholder.private")
	if kind == keygen.Recipient {
		label, hint, placeholder = i18n.T("label.public"), i18n.T("hint.public"), i18n.T("placeholder.public")
	}

	focused := m.focus == kind
	copyBtn, saveBtn := i18n.T("button.copy"), i18n.T("button.save")
	buttonStyle := m.styles.Help
	if focused {
		buttonStyle = m.styles.Label
	}
	header := AlignFooter(
		m.styles.Label.Render(label)+m.styles.Hint.Render(hint),
		buttonStyle.Render("[c] "+copyBtn+"  [s] "+saveBtn),
		m.fieldWidth()+2,
	)

	field := m.styles.Field
	if focused {
		field = m.styles.FocusedField
	}
	body := m.styles.Placeholder.Render(placeholder)
	if text := m.pair.Get(kind); text != "" {
		body = m.styles.Key.Render(text)
	}
	return header + "\n" + field.Width(m.fieldWidth()).Render(body)
}

func (m *model) viewGenerateButton() string {
	label := i18n.T("button.generate")
	var btn string
	if m.generating {
		btn = m.styles.DisabledButton.Render(m.spinner.View() + " " + label)
	} else {
		btn = m.styles.ActiveButton.Render(label)
	}
	return lipgloss.PlaceHorizontal(m.fieldWidth()+2, lipgloss.Center, btn)
}

func (m *model) viewSavePrompt() string {
	kindLabel := i18n.T("label.private")
	if m.focus == keygen.Recipient {
		kindLabel = i18n.T("label.public")
	}
	var b strings.Builder
	b.WriteString(m.styles.Label.Render(i18n.T("save.prompt", kindLabel)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(i18n.T("save.help")))
	return b.String()
}

func (m *model) viewStatus() string {
	style := m.styles.Status
	switch m.statusKind {
	case statusSuccess:
		style = m.styles.StatusSuccess
	case statusError:
		style = m.styles.StatusError
	}
	text := m.status
	if m.generating {
		text = m.spinner.View() + " " + text
	}
	return lipgloss.PlaceHorizontal(m.fieldWidth()+2, lipgloss.Center, style.Render(text))
}

func (m *model) viewErrorDialog() string {
	var b strings.Builder
	b.WriteString(m.styles.Error.Render(i18n.T("dialog.error_title")))
	b.WriteString("\n\n")
	b.WriteString(m.errMsg)
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render(i18n.T("dialog.dismiss")))

	dialog := m.styles.Dialog.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return dialog
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}
