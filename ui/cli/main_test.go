// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"filippo.io/age"
	"github.com/toeirei/agekey/internal/clipboard"
	"github.com/toeirei/agekey/internal/keygen"
	"github.com/toeirei/agekey/internal/logging"
	"github.com/toeirei/agekey/internal/theme"
	"github.com/toeirei/agekey/internal/tui"
)

// isolate points config discovery at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

// stubTool writes an age-keygen stand-in printing a fresh valid pair.
func stubTool(t *testing.T) (string, keygen.KeyPair) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are shell scripts")
	}
	id, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatal(err)
	}
	pair := keygen.KeyPair{Identity: id.String(), Recipient: id.Recipient().String()}
	path := filepath.Join(t.TempDir(), "age-keygen")
	body := fmt.Sprintf("#!/bin/sh\necho '# public key: %s'\necho '%s'\n", pair.Recipient, pair.Identity)
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}
	return path, pair
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_RefusesWithoutTerminal(t *testing.T) {
	isolate(t)
	prev := isTerminal
	isTerminal = func(*os.File) bool { return false }
	defer func() { isTerminal = prev }()

	_, _, err := execute(t)
	if !errors.Is(err, errNotTerminal) {
		t.Fatalf("expected errNotTerminal, got %v", err)
	}
}

func TestRoot_LaunchesFormWithConfig(t *testing.T) {
	tmp := isolate(t)
	prevTerm, prevRun, prevClip := isTerminal, runTUI, newClipboard
	defer func() { isTerminal, runTUI, newClipboard = prevTerm, prevRun, prevClip }()

	isTerminal = func(*os.File) bool { return true }
	mem := &clipboard.Memory{}
	newClipboard = func() clipboard.Writer { return mem }
	var got tui.Options
	runTUI = func(o tui.Options) error { got = o; return nil }

	logFile := filepath.Join(tmp, "agekey.log")
	if _, _, err := execute(t, "--theme", "dark", "--output-dir", tmp, "--log-file", logFile); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Theme != theme.Dark {
		t.Fatalf("expected dark theme, got %q", got.Theme)
	}
	if got.OutputDir != tmp {
		t.Fatalf("expected output dir %q, got %q", tmp, got.OutputDir)
	}
	if got.Generator == nil || got.Clipboard != mem {
		t.Fatalf("form not wired: %+v", got)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("log file not opened: %v", err)
	}
}

func TestRoot_FormErrorReleasesLogFile(t *testing.T) {
	tmp := isolate(t)
	prevTerm, prevRun := isTerminal, runTUI
	defer func() { isTerminal, runTUI = prevTerm, prevRun }()

	isTerminal = func(*os.File) bool { return true }
	formErr := errors.New("form crashed")
	runTUI = func(tui.Options) error { return formErr }

	logFile := filepath.Join(tmp, "agekey.log")
	if _, _, err := execute(t, "--log-file", logFile); !errors.Is(err, formErr) {
		t.Fatalf("expected form error, got %v", err)
	}
	before, err := os.Stat(logFile)
	if err != nil {
		t.Fatalf("log file not opened: %v", err)
	}
	logging.Errorf("after the form exited")
	after, err := os.Stat(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if after.Size() != before.Size() {
		t.Fatalf("logging still redirected to %s after form error", logFile)
	}
}

func TestRoot_RejectsUnknownTheme(t *testing.T) {
	isolate(t)
	prev := isTerminal
	isTerminal = func(*os.File) bool { return true }
	defer func() { isTerminal = prev }()

	if _, _, err := execute(t, "--theme", "sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "agekey ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestConfigInit_WritesFile(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "out", "agekey.yaml")
	out, _, err := execute(t, "config", "init", "--path", path, "--theme", "light")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("output should name the file: %q", out)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(b), "theme: light") {
		t.Fatalf("flag value not persisted:\n%s", b)
	}
}
