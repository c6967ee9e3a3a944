// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for agekey using the Cobra
// library. It defines the root command (the interactive key form), the
// generate, config and version subcommands, and the shared flags.

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/agekey/internal/clipboard"
	"github.com/toeirei/agekey/internal/config"
	"github.com/toeirei/agekey/internal/i18n"
	"github.com/toeirei/agekey/internal/keygen"
	"github.com/toeirei/agekey/internal/logging"
	"github.com/toeirei/agekey/internal/theme"
	"github.com/toeirei/agekey/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// Replaced in tests.
var (
	newClipboard = clipboard.Default
	isTerminal   = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
	runTUI       = tui.Run
)

// errNotTerminal is returned when the key form cannot take over the terminal.
var errNotTerminal = errors.New("not a terminal")

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	cfgFile string
	cfg     config.Config
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root command. Tests build fresh
// instances so flag state never leaks between them.
func NewRootCmd() *cobra.Command {
	a := &app{}
	d := config.Defaults()

	cmd := &cobra.Command{
		Use:   "agekey",
		Short: i18n.T("cli.short"),
		Long: `agekey runs age-keygen and shows the new identity (private key) and
recipient (public key) side by side, ready to copy or save.

Running without a subcommand opens the interactive key form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd)
		},
	}
	cmd.Version = resolvedVersion()

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/agekey/agekey.yaml or ./agekey.yaml)")
	pf.String("keygen", d.Keygen, "name or path of the age-keygen executable")
	pf.Duration("timeout", d.Timeout, "maximum time one age-keygen run may take")
	pf.String("theme", d.Theme, `color theme ("auto", "light", "dark")`)
	pf.String("lang", d.Language, `interface language ("en", "de")`)
	pf.String("output-dir", d.OutputDir, "directory offered when saving keys")
	pf.Bool("debug", d.Debug, "enable debug logging")
	pf.String("log-file", d.LogFile, "write logs to this file while the key form runs")

	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	c, err := config.Load(cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = c
	i18n.Init(c.Language)
	logging.SetDebug(c.Debug)
	logging.Debugf("config: %+v", c)
	return nil
}

// runForm opens the interactive key form.
func (a *app) runForm(cmd *cobra.Command) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("%w: %s", errNotTerminal, i18n.T("cli.not_a_terminal"))
	}

	mode, err := theme.ParseMode(a.cfg.Theme)
	if err != nil {
		return err
	}
	// Query the background before the form takes over the terminal.
	mode = theme.Detect(mode)

	closer, err := logging.OpenFile(a.cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
		logging.SetOutput(os.Stderr)
	}()

	return runTUI(tui.Options{
		Generator: keygen.NewTool(a.cfg.Keygen, a.cfg.Timeout),
		Clipboard: newClipboard(),
		Theme:     mode,
		OutputDir: a.cfg.OutputDir,
		Context:   cmd.Context(),
	})
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return keygen.DefaultTimeout
	}
	return d
}
