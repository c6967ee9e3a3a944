// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"
)

func TestMemory_RoundTrip(t *testing.T) {
	var m Memory
	if err := m.WriteAll("age1exact"); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if got := m.ReadAll(); got != "age1exact" {
		t.Fatalf("got %q", got)
	}
}

func TestDefault_IsSystem(t *testing.T) {
	if _, ok := Default().(System); !ok {
		t.Fatalf("Default returned %T, want System", Default())
	}
}

func TestDefault_UnsupportedSurfacesError(t *testing.T) {
	prev := clipboard.Unsupported
	clipboard.Unsupported = true
	defer func() { clipboard.Unsupported = prev }()

	err := Default().WriteAll("age1exact")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
