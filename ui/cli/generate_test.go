// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/toeirei/agekey/internal/clipboard"
	"github.com/toeirei/agekey/internal/keygen"
)

func TestGenerate_PrintsBothLines(t *testing.T) {
	isolate(t)
	stub, pair := stubTool(t)

	out, _, err := execute(t, "generate", "--keygen", stub)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := pair.Identity + "\n" + pair.Recipient + "\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestGenerate_SavesAndCopies(t *testing.T) {
	tmp := isolate(t)
	stub, pair := stubTool(t)

	prev := newClipboard
	mem := &clipboard.Memory{}
	newClipboard = func() clipboard.Writer { return mem }
	defer func() { newClipboard = prev }()

	priv := filepath.Join(tmp, "keys", "me")
	pub := filepath.Join(tmp, "keys", "me.pub")
	out, _, err := execute(t, "generate", "--keygen", stub, "--private-out", priv, "--public-out", pub, "--copy", "--quiet")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "" {
		t.Fatalf("--quiet should suppress key output, got %q", out)
	}

	b, err := os.ReadFile(priv + ".key")
	if err != nil || string(b) != pair.Identity {
		t.Fatalf("identity file = %q, %v", b, err)
	}
	if runtime.GOOS != "windows" {
		fi, _ := os.Stat(priv + ".key")
		if fi.Mode().Perm() != 0600 {
			t.Fatalf("identity file mode %v, want 0600", fi.Mode().Perm())
		}
	}
	b, err = os.ReadFile(pub)
	if err != nil || string(b) != pair.Recipient {
		t.Fatalf("recipient file = %q, %v", b, err)
	}
	if mem.ReadAll() != pair.Recipient {
		t.Fatalf("clipboard = %q, want recipient", mem.ReadAll())
	}
}

func TestGenerate_ToolFailure(t *testing.T) {
	tmp := isolate(t)
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are shell scripts")
	}
	stub := filepath.Join(tmp, "age-keygen")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\necho broken >&2\nexit 2\n"), 0755); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "generate", "--keygen", stub)
	var ee *keygen.ExitError
	if !errors.As(err, &ee) || ee.Code != 2 {
		t.Fatalf("expected exit status 2, got %v", err)
	}
	if out != "" {
		t.Fatalf("nothing should be printed on failure, got %q", out)
	}
}

func TestGenerate_ToolMissing(t *testing.T) {
	tmp := isolate(t)
	_, _, err := execute(t, "generate", "--keygen", filepath.Join(tmp, "missing", "age-keygen"))
	if !errors.Is(err, keygen.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerate_CopyWithoutClipboardFails(t *testing.T) {
	isolate(t)
	stub, _ := stubTool(t)

	prev := atotto.Unsupported
	atotto.Unsupported = true
	defer func() { atotto.Unsupported = prev }()

	_, errOut, err := execute(t, "generate", "--keygen", stub, "--copy")
	if !errors.Is(err, clipboard.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if strings.Contains(errOut, "copied") {
		t.Fatalf("copy reported success: %q", errOut)
	}
}

func TestGenerate_IgnoresBinaryNamedLikeConfig(t *testing.T) {
	tmp := isolate(t)
	stub, pair := stubTool(t)
	// The built program sits in the working directory under the config's base name.
	if err := os.WriteFile(filepath.Join(tmp, "agekey"), []byte("\x7fELF\x02\x01\x01\x00\x00binary"), 0755); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "generate", "--keygen", stub)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != pair.Identity+"\n"+pair.Recipient+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGenerate_RejectsUnknownLanguage(t *testing.T) {
	isolate(t)
	stub, _ := stubTool(t)
	_, _, err := execute(t, "generate", "--keygen", stub, "--lang", "xx")
	if err == nil || !strings.Contains(err.Error(), "unsupported language") {
		t.Fatalf("expected unsupported language error, got %v", err)
	}
}
