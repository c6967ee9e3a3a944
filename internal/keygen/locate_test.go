// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func noPath(string) (string, error) { return "", errors.New("not on PATH") }

func TestLocator_SearchesDirsInOrder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix file names")
	}
	first, second := t.TempDir(), t.TempDir()
	want := filepath.Join(second, DefaultTool)
	if err := os.WriteFile(want, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	l := Locator{Dirs: []string{first, second}, LookPath: noPath}
	got, err := l.Locate()
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLocator_FallsBackToLookPath(t *testing.T) {
	l := Locator{Name: "age-keygen", LookPath: func(name string) (string, error) {
		return "/opt/age/bin/" + name, nil
	}}
	got, err := l.Locate()
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if runtime.GOOS != "windows" && got != "/opt/age/bin/age-keygen" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestLocator_NotFound(t *testing.T) {
	l := Locator{Dirs: []string{t.TempDir()}, LookPath: noPath}
	if _, err := l.Locate(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocator_ExplicitPathMissing(t *testing.T) {
	l := Locator{Name: filepath.Join(t.TempDir(), "nope", "age-keygen"), LookPath: noPath}
	if _, err := l.Locate(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLocator_MakesExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions only")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultTool)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Locator{Name: path, LookPath: noPath}.Locate()
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	fi, err := os.Stat(got)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm()&0100 == 0 {
		t.Fatalf("expected owner execute bit, got %v", fi.Mode().Perm())
	}
}
