// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"filippo.io/age"
	"github.com/toeirei/agekey/internal/logging"
)

const (
	// DefaultTimeout bounds one run of the tool.
	DefaultTimeout = 30 * time.Second
	// DefaultDeriveTimeout bounds the "-y" recipient derivation.
	DefaultDeriveTimeout = 10 * time.Second
)

// Generator produces a fresh key pair.
type Generator interface {
	Generate(ctx context.Context) (KeyPair, error)
}

// Runner invokes the external tool at Path.
type Runner struct {
	Path          string
	Timeout       time.Duration
	DeriveTimeout time.Duration
}

// NewRunner returns a Runner with default timeouts.
func NewRunner(path string) *Runner {
	return &Runner{Path: path, Timeout: DefaultTimeout, DeriveTimeout: DefaultDeriveTimeout}
}

// Generate runs the tool once and returns the pair it printed. A failed run
// never returns a partial pair.
func (r *Runner) Generate(ctx context.Context) (KeyPair, error) {
	if r.Path == "" {
		return KeyPair{}, ErrNotFound
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	logging.Debugf("running %s", r.Path)
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return KeyPair{}, ErrTimeout
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return KeyPair{}, &ExitError{Code: ee.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
		}
		return KeyPair{}, fmt.Errorf("run %s: %w", r.Path, err)
	}

	pair, err := Parse(stdout.String() + "\n" + stderr.String())
	if err != nil {
		return KeyPair{}, err
	}
	if pair.Recipient == "" {
		recipient, err := r.derive(ctx, pair.Identity)
		if err != nil {
			return KeyPair{}, err
		}
		pair.Recipient = recipient
	}
	if err := Verify(pair); err != nil {
		return KeyPair{}, err
	}
	return pair, nil
}

// derive asks the tool for the recipient ("-y", identity on stdin) and falls
// back to computing it locally.
func (r *Runner) derive(ctx context.Context, identity string) (string, error) {
	timeout := r.DeriveTimeout
	if timeout <= 0 {
		timeout = DefaultDeriveTimeout
	}
	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(dctx, r.Path, "-y")
	cmd.Stdin = strings.NewReader(identity + "\n")
	cmd.WaitDelay = time.Second
	out, err := cmd.Output()
	if err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if line = strings.TrimSpace(line); strings.HasPrefix(line, recipientPrefix) {
				return line, nil
			}
		}
	}
	logging.Debugf("%s -y gave no recipient (err=%v), deriving locally", r.Path, err)

	return DeriveRecipient(identity)
}

// DeriveRecipient computes the recipient of an X25519 identity.
func DeriveRecipient(identity string) (string, error) {
	id, err := age.ParseX25519Identity(identity)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoRecipient, err)
	}
	return id.Recipient().String(), nil
}

// Verify checks that the recipient belongs to the identity. Identities that
// are not X25519 (for example post-quantum hybrids) are accepted unchecked.
func Verify(p KeyPair) error {
	id, err := age.ParseX25519Identity(p.Identity)
	if err != nil {
		logging.Debugf("identity is not X25519, skipping recipient check: %v", err)
		return nil
	}
	if id.Recipient().String() != p.Recipient {
		return ErrMismatch
	}
	return nil
}
