// Copyright (c) 2026 Keymaster Team
// agekey - age key pair generator front-end
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keygen locates and runs the external age-keygen tool and turns
// its text output into a KeyPair.
//
// Key material is never produced here: the identity always comes from the
// external tool. filippo.io/age is only used to derive a missing recipient
// and to check that a reported recipient belongs to the identity.
package keygen
