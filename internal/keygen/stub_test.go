// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"filippo.io/age"
)

// writeStub writes a shell script standing in for age-keygen and returns its path.
func writeStub(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are shell scripts")
	}
	path := filepath.Join(t.TempDir(), DefaultTool)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// realPair returns a valid X25519 identity and its recipient.
func realPair(t *testing.T) KeyPair {
	t.Helper()
	id, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("generate identity: %v", err)
	}
	return KeyPair{Identity: id.String(), Recipient: id.Recipient().String()}
}
