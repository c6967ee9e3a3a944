// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/agekey/internal/config"
	"github.com/toeirei/agekey/internal/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the agekey configuration file",
	}

	var system bool
	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to a configuration file",
		Long: `Writes the effective settings (defaults, merged with any existing
file, environment and flags) as YAML to the user configuration directory,
the system directory with --system, or an explicit --path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg
			written := path
			var err error
			if path != "" {
				err = config.WriteConfigFileTo(&c, path)
			} else {
				written, err = config.WriteConfigFile(&c, system)
			}
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", written))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "write the system-wide file instead of the user file")
	initCmd.Flags().StringVar(&path, "path", "", "write to this file")

	cmd.AddCommand(initCmd)
	return cmd
}
