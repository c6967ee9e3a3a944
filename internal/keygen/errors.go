// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the external tool cannot be located.
	ErrNotFound = errors.New("age-keygen not found")
	// ErrNotExecutable is returned when the located tool cannot be made executable.
	ErrNotExecutable = errors.New("age-keygen is not executable")
	// ErrTimeout is returned when the tool does not finish in time.
	ErrTimeout = errors.New("age-keygen timed out")
	// ErrNoIdentity is returned when the output carries no AGE-SECRET-KEY- line.
	ErrNoIdentity = errors.New("no identity in age-keygen output")
	// ErrNoRecipient is returned when no recipient was printed and none could be derived.
	ErrNoRecipient = errors.New("unable to derive recipient")
	// ErrMismatch is returned when the printed recipient does not belong to the identity.
	ErrMismatch = errors.New("recipient does not match identity")
)

// ExitError reports a non-zero exit of the external tool.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("age-keygen exited with status %d", e.Code)
	}
	return fmt.Sprintf("age-keygen exited with status %d: %s", e.Code, e.Stderr)
}
