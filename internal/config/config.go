// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads agekey settings from defaults, a YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/toeirei/agekey/internal/i18n"
	"gopkg.in/yaml.v3"
)

// Config holds every setting agekey reads.
type Config struct {
	// Keygen is the tool name or path to age-keygen.
	Keygen    string        `mapstructure:"keygen" yaml:"keygen"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Theme     string        `mapstructure:"theme" yaml:"theme"`
	Language  string        `mapstructure:"language" yaml:"language"`
	OutputDir string        `mapstructure:"output_dir" yaml:"output_dir"`
	Debug     bool          `mapstructure:"debug" yaml:"debug"`
	LogFile   string        `mapstructure:"log_file" yaml:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Keygen:    "age-keygen",
		Timeout:   30 * time.Second,
		Theme:     "auto",
		Language:  "en",
		OutputDir: ".",
	}
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"keygen":     "keygen",
	"timeout":    "timeout",
	"theme":      "theme",
	"lang":       "language",
	"output-dir": "output_dir",
	"debug":      "debug",
	"log-file":   "log_file",
}

// ConfigPath returns the full path for the configuration file.
func ConfigPath(system bool) (string, error) {
	var configDir string
	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "agekey")
		default: // Linux, macOS, etc.
			configDir = "/etc/agekey"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, "agekey")
	}
	return filepath.Join(configDir, "agekey.yaml"), nil
}

// Load resolves the configuration. configFile, when non-empty, must exist;
// otherwise the standard locations are searched and a missing file is fine.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	var c Config
	v := viper.New()

	d := Defaults()
	v.SetDefault("keygen", d.Keygen)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("language", d.Language)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)

	path := configFile
	if path == "" {
		path = findConfigFile(searchDirs())
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("agekey")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, c.Validate()
}

// configNames are the only file names searched for; a bare "agekey" in the
// working directory is usually the program itself.
var configNames = []string{"agekey.yaml", "agekey.yml"}

func searchDirs() []string {
	var dirs []string
	if p, err := ConfigPath(false); err == nil {
		dirs = append(dirs, filepath.Dir(p))
	}
	if p, err := ConfigPath(true); err == nil {
		dirs = append(dirs, filepath.Dir(p))
	}
	return append(dirs, ".")
}

// findConfigFile returns the first regular config file in dirs, or "".
func findConfigFile(dirs []string) string {
	for _, dir := range dirs {
		for _, name := range configNames {
			p := filepath.Join(dir, name)
			if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
				return p
			}
		}
	}
	return ""
}

// Validate rejects settings that cannot work.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if strings.TrimSpace(c.Keygen) == "" {
		return errors.New("keygen must not be empty")
	}
	locales := i18n.GetAvailableLocales()
	if _, ok := locales[c.Language]; !ok {
		tags := make([]string, 0, len(locales))
		for tag := range locales {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		return fmt.Errorf("unsupported language %q (available: %s)", c.Language, strings.Join(tags, ", "))
	}
	return nil
}

// WriteConfigFile writes c as YAML to the user or system location and
// returns the path written.
func WriteConfigFile(c *Config, system bool) (string, error) {
	path, err := ConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo(c *Config, path string) error {
	data, err := yaml.Marshal(fileConfig{
		Keygen:    c.Keygen,
		Timeout:   c.Timeout.String(),
		Theme:     c.Theme,
		Language:  c.Language,
		OutputDir: c.OutputDir,
		Debug:     c.Debug,
		LogFile:   c.LogFile,
	})
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	return os.WriteFile(path, append([]byte(header), data...), 0644)
}

// fileConfig is the on-disk shape; durations are written as "30s".
type fileConfig struct {
	Keygen    string `yaml:"keygen"`
	Timeout   string `yaml:"timeout"`
	Theme     string `yaml:"theme"`
	Language  string `yaml:"language"`
	OutputDir string `yaml:"output_dir"`
	Debug     bool   `yaml:"debug"`
	LogFile   string `yaml:"log_file"`
}

const header = `# agekey configuration file.
# keygen: name or path of the age-keygen executable.
# theme: auto, light or dark. language: en or de.
`
