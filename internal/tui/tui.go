// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive key form: it runs age-keygen in the
// background, shows the identity and recipient, and copies or saves either.
package tui // import "github.com/toeirei/agekey/internal/tui"

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the key form and blocks until the user quits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newModel(opts), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
