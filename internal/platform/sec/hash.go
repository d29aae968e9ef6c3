// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing,
// password policy, role gating) from the domain logic. It acts as an
// Infrastructure service injected into the Application layer via small
// interfaces defined at the point of use.
package sec

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the hard input ceiling of the bcrypt algorithm.
//
// The limit is in BYTES, not characters: a multibyte password can exceed it
// with far fewer runes. Callers must reject longer candidates before hashing.
const MaxPasswordBytes = 72

// Hasher produces and verifies salted bcrypt password digests.
//
// # Cost
//
// The cost factor is injected at construction (no package-level state) so
// operators can retune hashing latency without a code change. Hashing is
// deliberately slow — on the order of 100ms at the default cost — and must
// never be retried to "fix" a slow response.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher with the given bcrypt cost factor.
// Out-of-range values fall back to [bcrypt.DefaultCost].
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash produces a salted one-way digest of the plain-text password.
//
// Each call salts independently, so two digests of the same input are never
// byte-equal. Digests must only ever be compared through [Hasher.Verify].
func (h Hasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify reports whether the plain-text password matches the stored digest.
//
// The comparison is constant-time inside bcrypt. A malformed or truncated
// digest never panics or errors out of this function — it simply reports
// false, identical to a wrong password.
func (h Hasher) Verify(plainTextPassword, existingDigest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingDigest), []byte(plainTextPassword))
	return err == nil
}
