// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/toeirei/agekey/internal/logging"
)

// DefaultTool is the executable name searched for when none is configured.
const DefaultTool = "age-keygen"

// Locator resolves the external tool. Dirs are searched in order before
// falling back to LookPath.
type Locator struct {
	Name     string
	Dirs     []string
	LookPath func(string) (string, error)
}

// NewLocator returns a Locator searching the working directory, the
// directory of the running binary and then $PATH.
func NewLocator(name string) Locator {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if self, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(self))
	}
	return Locator{Name: name, Dirs: dirs, LookPath: exec.LookPath}
}

// Locate returns an absolute path to the tool, making it executable if needed.
func (l Locator) Locate() (string, error) {
	name := l.Name
	if name == "" {
		name = DefaultTool
	}
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		name += ".exe"
	}

	// An explicit path is used as is.
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		if !isFile(name) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		abs, err := filepath.Abs(name)
		if err != nil {
			return "", err
		}
		return abs, ensureExecutable(abs)
	}

	for _, dir := range l.Dirs {
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			logging.Debugf("found %s in %s", name, dir)
			return candidate, ensureExecutable(candidate)
		}
	}

	if l.LookPath != nil {
		if p, err := l.LookPath(name); err == nil {
			logging.Debugf("found %s on PATH at %s", name, p)
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func ensureExecutable(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotExecutable, path, err)
	}
	if fi.Mode().Perm()&0111 != 0 {
		return nil
	}
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotExecutable, path, err)
	}
	logging.Infof("made %s executable", path)
	return nil
}
