// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartval/identity/internal/platform/sec"
)

/*
TestHasher_RoundTrip verifies the basic hash/verify contract.
*/
func TestHasher_RoundTrip(t *testing.T) {
	// MinCost keeps the unit test fast; production cost is configured.
	hasher := sec.NewHasher(4)

	digest, err := hasher.Hash("S3cure!password")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, hasher.Verify("S3cure!password", digest))
	assert.False(t, hasher.Verify("wrong-password", digest))
}

/*
TestHasher_SaltedDigestsDiffer verifies that hashing is non-deterministic:
the same password never produces the same digest twice.
*/
func TestHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := sec.NewHasher(4)

	first, err := hasher.Hash("S3cure!password")
	require.NoError(t, err)
	second, err := hasher.Hash("S3cure!password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both still verify against the original password.
	assert.True(t, hasher.Verify("S3cure!password", first))
	assert.True(t, hasher.Verify("S3cure!password", second))
}

/*
TestHasher_MalformedDigest verifies that a corrupt stored digest behaves
exactly like a wrong password — false, never a panic or error.
*/
func TestHasher_MalformedDigest(t *testing.T) {
	hasher := sec.NewHasher(4)

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"garbage", "not-a-bcrypt-digest"},
		{"truncated", "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("any-password", tt.digest))
		})
	}
}

/*
TestHasher_MaxPasswordBytes verifies the round trip holds right up to the
bcrypt byte ceiling, and that the ceiling itself errors rather than
silently truncating.
*/
func TestHasher_MaxPasswordBytes(t *testing.T) {
	hasher := sec.NewHasher(4)

	atLimit := strings.Repeat("a", sec.MaxPasswordBytes)
	digest, err := hasher.Hash(atLimit)
	require.NoError(t, err)
	assert.True(t, hasher.Verify(atLimit, digest))

	_, err = hasher.Hash(atLimit + "a")
	assert.Error(t, err)
}

/*
TestNewHasher_CostClamping verifies out-of-range cost factors fall back to a
sane default instead of failing at hash time.
*/
func TestNewHasher_CostClamping(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{"below_min", 0},
		{"negative", -5},
		{"above_max", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := sec.NewHasher(tt.cost)
			digest, err := hasher.Hash("S3cure!password")
			require.NoError(t, err)
			assert.True(t, hasher.Verify("S3cure!password", digest))
		})
	}
}
