// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/agekey/internal/i18n"
	"github.com/toeirei/agekey/internal/keyfile"
	"github.com/toeirei/agekey/internal/keygen"
	"github.com/toeirei/agekey/internal/logging"
)

type generateOptions struct {
	privateOut string
	publicOut  string
	copy       bool
	quiet      bool
}

// newGenerateCmd runs age-keygen once without the key form.
func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a key pair and print it",
		Long: `Runs age-keygen once and prints the identity followed by the recipient,
one per line. Use --private-out and --public-out to save them instead of
(or in addition to) printing, and --copy to put the recipient on the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			gen := keygen.NewTool(a.cfg.Keygen, timeoutOrDefault(a.cfg.Timeout))
			return runGenerate(ctx, cmd, gen, o)
		},
	}
	cmd.Flags().StringVar(&o.privateOut, "private-out", "", "save the identity to this file (.key is appended if missing)")
	cmd.Flags().StringVar(&o.publicOut, "public-out", "", "save the recipient to this file")
	cmd.Flags().BoolVar(&o.copy, "copy", false, "copy the recipient to the clipboard")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "do not print the keys")
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, gen keygen.Generator, o *generateOptions) error {
	pair, err := gen.Generate(ctx)
	if err != nil {
		logging.Errorf("key generation failed: %v", err)
		return fmt.Errorf("generate: %w", err)
	}

	if !o.quiet {
		fmt.Fprintln(cmd.OutOrStdout(), pair.Identity)
		fmt.Fprintln(cmd.OutOrStdout(), pair.Recipient)
	}

	for _, out := range []struct {
		path string
		kind keygen.Kind
	}{
		{o.privateOut, keygen.Identity},
		{o.publicOut, keygen.Recipient},
	} {
		if out.path == "" {
			continue
		}
		written, err := keyfile.Save(out.path, out.kind, pair.Get(out.kind))
		if err != nil {
			return fmt.Errorf("save %s: %w", out.kind, err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.saved", out.kind, written))
	}

	if o.copy {
		if err := newClipboard().WriteAll(pair.Recipient); err != nil {
			return fmt.Errorf("copy recipient: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.copied"))
	}
	return nil
}
