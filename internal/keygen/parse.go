// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"bufio"
	"strings"
)

const (
	identityPrefix  = "AGE-SECRET-KEY-"
	recipientPrefix = "age1"
	publicComment   = "# public key:"
)

// Parse extracts a key pair from age-keygen output.
//
// The identity is the first line starting with AGE-SECRET-KEY-. The recipient
// is the first line starting with age1 or the value of a "# public key:"
// comment, whichever comes first. Recipient may be empty on success; callers
// derive it separately.
func Parse(output string) (KeyPair, error) {
	var p KeyPair
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case p.Identity == "" && strings.HasPrefix(line, identityPrefix):
			p.Identity = line
		case p.Recipient == "" && strings.HasPrefix(line, recipientPrefix):
			p.Recipient = line
		case p.Recipient == "" && strings.HasPrefix(line, publicComment):
			p.Recipient = strings.TrimSpace(strings.TrimPrefix(line, publicComment))
		}
	}
	if p.Identity == "" {
		return KeyPair{}, ErrNoIdentity
	}
	return p, nil
}
