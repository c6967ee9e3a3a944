// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard puts key text on the clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned by System when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Memory keeps the last written value. It never touches the OS clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// WriteAll implements Writer.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// ReadAll returns the last written value.
func (m *Memory) ReadAll() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Default returns the OS clipboard. Without a clipboard utility its writes
// fail with ErrUnsupported.
func Default() Writer {
	return System{}
}
