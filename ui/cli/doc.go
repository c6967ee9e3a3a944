// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for agekey using Cobra.
// It loads configuration and hands off to the key form or, for scripts, to
// the non-interactive generate command. CLI code stays thin and delegates
// to the keygen, keyfile and clipboard packages.
package cli
