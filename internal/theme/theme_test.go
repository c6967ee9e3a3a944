// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package theme

import "testing"

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": Auto, "auto": Auto, "Dark": Dark, " light ": Light} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseMode("solarized"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestDetect(t *testing.T) {
	prev := hasDarkBackground
	defer func() { hasDarkBackground = prev }()

	hasDarkBackground = func() bool { return true }
	if got := Detect(Auto); got != Dark {
		t.Fatalf("expected Dark on dark background, got %q", got)
	}
	hasDarkBackground = func() bool { return false }
	if got := Detect(Auto); got != Light {
		t.Fatalf("expected Light on light background, got %q", got)
	}
	// An explicit choice wins over the terminal.
	if got := Detect(Dark); got != Dark {
		t.Fatalf("explicit mode overridden: %q", got)
	}
}

func TestToggleAndPalettes(t *testing.T) {
	if Toggle(Dark) != Light || Toggle(Light) != Dark {
		t.Fatalf("Toggle should flip between light and dark")
	}
	if PaletteFor(Dark).Background == PaletteFor(Light).Background {
		t.Fatalf("dark and light palettes should differ")
	}
	s := New(Dark)
	if s.Mode != Dark || s.Palette.Error != darkPalette.Error {
		t.Fatalf("styles not built from dark palette")
	}
}
