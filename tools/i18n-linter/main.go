// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every i18n.T() key used in the Go sources exists
// in the primary locale and that every other locale translates all of them.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const primaryLocale = "active.en.yaml"

var keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// report lists the problems found by lint.
type report struct {
	Undefined []string            // used in code, absent from the primary locale
	Orphaned  []string            // in the primary locale, never used
	Missing   map[string][]string // locale file -> keys it lacks
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	root := flag.String("root", ".", "project root to scan")
	locales := flag.String("locales", "internal/i18n/locales", "directory holding the locale YAML files")
	flag.Parse()

	fmt.Println("🔍 Running i18n linter...")
	r, err := lint(*root, *locales)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	printList("Undefined keys (used in code, not in "+primaryLocale+")", r.Undefined)
	printList("Orphaned keys (in "+primaryLocale+", never used)", r.Orphaned)
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		printList("Missing in "+f, r.Missing[f])
	}

	if r.failed() {
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("✅ All translation files are consistent!")
}

func printList(title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Printf("--- %s ---\n", title)
	for _, k := range keys {
		fmt.Printf("  - %s\n", k)
	}
}

func lint(root, localesDir string) (report, error) {
	r := report{Missing: make(map[string][]string)}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scan sources: %w", err)
	}
	primary, err := loadKeys(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("load primary locale: %w", err)
	}

	for k := range used {
		if _, ok := primary[k]; !ok {
			r.Undefined = append(r.Undefined, k)
		}
	}
	for k := range primary {
		if _, ok := used[k]; !ok {
			r.Orphaned = append(r.Orphaned, k)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, f := range files {
		if filepath.Base(f) == primaryLocale {
			continue
		}
		keys, err := loadKeys(f)
		if err != nil {
			return r, fmt.Errorf("load %s: %w", f, err)
		}
		var missing []string
		for k := range primary {
			if _, ok := keys[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(f)] = missing
		}
	}
	return r, nil
}

// findUsedKeys collects the literal keys passed to i18n.T in non-test sources.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || name == "vendor" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeys returns the flattened message IDs of a locale file.
func loadKeys(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flatten("", raw, keys)
	return keys, nil
}

func flatten(prefix string, m map[string]any, out map[string]struct{}) {
	for k, v := range m {
		id := k
		if prefix != "" {
			id = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(id, sub, out)
			continue
		}
		out[id] = struct{}{}
	}
}
