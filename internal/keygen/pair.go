// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import "fmt"

// Kind selects one half of a KeyPair.
type Kind int

const (
	// Identity is the private key (AGE-SECRET-KEY-...).
	Identity Kind = iota
	// Recipient is the public key (age1...), safe to share.
	Recipient
)

func (k Kind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Recipient:
		return "recipient"
	default:
		return "unknown"
	}
}

// KeyPair is one identity together with its recipient, exactly as reported
// by the external tool.
type KeyPair struct {
	Identity  string
	Recipient string
}

// Get returns the half of the pair selected by kind.
func (p KeyPair) Get(kind Kind) string {
	if kind == Identity {
		return p.Identity
	}
	return p.Recipient
}

// IsZero reports whether no key has been generated yet.
func (p KeyPair) IsZero() bool {
	return p.Identity == "" && p.Recipient == ""
}

// String redacts the identity so a pair can be logged or formatted with
// %v without revealing private key material.
func (p KeyPair) String() string {
	id := "<none>"
	if p.Identity != "" {
		id = "[SECRET]"
	}
	return fmt.Sprintf("identity=%s recipient=%s", id, p.Recipient)
}
