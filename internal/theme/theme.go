// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme picks a light or dark palette and builds the lipgloss styles
// used by the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode is the configured theme preference.
type Mode string

const (
	Auto  Mode = "auto"
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode validates a configured theme name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Auto, Light, Dark:
		return m, nil
	case "":
		return Auto, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want auto, light or dark)", s)
	}
}

// hasDarkBackground queries the terminal. Tests replace it.
var hasDarkBackground = termenv.HasDarkBackground

// Detect resolves Auto against the terminal background. It is read once;
// Toggle switches afterwards.
func Detect(m Mode) Mode {
	if m != Auto {
		return m
	}
	if hasDarkBackground() {
		return Dark
	}
	return Light
}

// Toggle returns the opposite of a resolved mode.
func Toggle(m Mode) Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Palette holds the colors of one theme.
type Palette struct {
	Primary       lipgloss.Color
	Background    lipgloss.Color
	CardBg        lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextDisabled  lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
}

var (
	lightPalette = Palette{
		Primary:       "#007AFF",
		Background:    "#F2F2F7",
		CardBg:        "#FFFFFF",
		TextPrimary:   "#000000",
		TextSecondary: "#8E8E93",
		TextDisabled:  "#C7C7CC",
		Border:        "#C7C7CC",
		Success:       "#34C759",
		Warning:       "#FF9500",
		Error:         "#FF3B30",
	}
	darkPalette = Palette{
		Primary:       "#0A84FF",
		Background:    "#000000",
		CardBg:        "#1C1C1E",
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#8E8E93",
		TextDisabled:  "#48484A",
		Border:        "#38383A",
		Success:       "#30D158",
		Warning:       "#FF9F0A",
		Error:         "#FF453A",
	}
)

// PaletteFor returns the palette of a resolved mode.
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return darkPalette
	}
	return lightPalette
}
