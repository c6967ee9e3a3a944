// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides internationalization and localization support for agekey.
// It uses the go-i18n library to load the embedded translation files, allowing the
// user interface to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func loadBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}
	return b
}

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(l string) {
	bundle = loadBundle()
	localizer = i18n.NewLocalizer(bundle, l)
}

// GetAvailableLocales maps each embedded locale tag to its display name.
// It does not change the active language.
func GetAvailableLocales() map[string]string {
	b := bundle
	if b == nil {
		b = loadBundle()
	}
	out := make(map[string]string)
	for _, tag := range b.LanguageTags() {
		name := tag.String()
		loc := i18n.NewLocalizer(b, name)
		if display, err := loc.Localize(&i18n.LocalizeConfig{MessageID: "language.name"}); err == nil {
			out[name] = display
		} else {
			out[name] = name
		}
	}
	return out
}

// T translates a message by its ID.
// A single map argument is used as template data; any other arguments are
// applied fmt-style to the translated string. Unknown IDs return the ID itself.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
