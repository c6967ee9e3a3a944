// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyfile writes generated keys to disk verbatim.
package keyfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/toeirei/agekey/internal/keygen"
)

// ErrEmpty is returned when there is no key to write.
var ErrEmpty = errors.New("no key to save")

const identityExt = ".key"

// DefaultName is the file name offered when saving a key of the given kind.
func DefaultName(kind keygen.Kind) string {
	if kind == keygen.Identity {
		return "age_private" + identityExt
	}
	return "age_public.txt"
}

// Perm is the file mode used for a key of the given kind. Identities are
// owner-only on Unix-like systems; on Windows, where POSIX permissions are
// not meaningful, it falls back to 0644.
func Perm(kind keygen.Kind) os.FileMode {
	if kind == keygen.Identity && runtime.GOOS != "windows" {
		return 0600
	}
	return 0644
}

// Save writes content to path byte-for-byte and returns the path actually
// written. Identity files always carry a .key suffix.
func Save(path string, kind keygen.Kind, content string) (string, error) {
	if content == "" {
		return "", ErrEmpty
	}
	if path == "" {
		path = DefaultName(kind)
	}
	if kind == keygen.Identity && !strings.HasSuffix(strings.ToLower(path), identityExt) {
		path += identityExt
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := WriteKeyFile(path, []byte(content), Perm(kind)); err != nil {
		return "", err
	}
	return path, nil
}

// WriteKeyFile writes data with perm. An existing file is truncated and its
// mode reset, so a previously world-readable file does not keep leaking.
func WriteKeyFile(filename string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(filename, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if runtime.GOOS != "windows" {
		if err := os.Chmod(filename, perm); err != nil {
			return fmt.Errorf("chmod %s: %w", filename, err)
		}
	}
	return nil
}
