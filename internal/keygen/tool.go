// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"context"
	"time"
)

// Tool locates the executable on every Generate call, so installing age
// while the form is open makes the next attempt succeed.
type Tool struct {
	Locator Locator
	Timeout time.Duration
}

// NewTool returns a Tool using the default search order for name.
func NewTool(name string, timeout time.Duration) *Tool {
	return &Tool{Locator: NewLocator(name), Timeout: timeout}
}

// Generate implements Generator.
func (t *Tool) Generate(ctx context.Context) (KeyPair, error) {
	path, err := t.Locator.Locate()
	if err != nil {
		return KeyPair{}, err
	}
	r := NewRunner(path)
	if t.Timeout > 0 {
		r.Timeout = t.Timeout
	}
	return r.Generate(ctx)
}
