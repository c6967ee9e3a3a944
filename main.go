// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for agekey.
//
// Usage:
//
//	go run . [flags]
//	./agekey [flags]
//	./agekey generate --private-out me.key --public-out me.pub
//
// Without a subcommand this opens the interactive key form. See --help.
package main

import (
	"os"

	"github.com/toeirei/agekey/ui/cli"
)

// main is the entrypoint for the agekey CLI.
func main() {
	if err := cli.Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
