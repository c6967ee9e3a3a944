// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"

	"github.com/toeirei/agekey/internal/i18n"
	"github.com/toeirei/agekey/internal/keygen"
)

// errorText turns a generation error into the message shown in the dialog.
func errorText(err error) string {
	var exitErr *keygen.ExitError
	switch {
	case errors.Is(err, keygen.ErrNotFound):
		return i18n.T("error.not_found")
	case errors.Is(err, keygen.ErrNotExecutable):
		return i18n.T("error.not_executable", err.Error())
	case errors.Is(err, keygen.ErrTimeout):
		return i18n.T("error.timeout")
	case errors.Is(err, keygen.ErrNoIdentity):
		return i18n.T("error.no_identity")
	case errors.Is(err, keygen.ErrNoRecipient):
		return i18n.T("error.no_recipient")
	case errors.Is(err, keygen.ErrMismatch):
		return i18n.T("error.mismatch")
	case errors.As(err, &exitErr):
		detail := exitErr.Stderr
		if detail == "" {
			detail = exitErr.Error()
		}
		return i18n.T("error.subprocess", detail)
	default:
		return i18n.T("error.unknown", err)
	}
}
