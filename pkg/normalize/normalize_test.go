// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartval/identity/pkg/normalize"
)

/*
TestUsername verifies the canonical username form: NFKC-normalized,
lowercased, and trimmed.
*/
func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already_canonical", "ada", "ada"},
		{"uppercase_folded", "ADA", "ada"},
		{"mixed_case", "AdaLovelace", "adalovelace"},
		{"surrounding_whitespace", "  ada  ", "ada"},
		{"fullwidth_compatibility", "ａｄａ", "ada"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Username(tt.input))
		})
	}
}

/*
TestUsername_ConfusableFormsCollapse verifies that visually equivalent
Unicode sequences map to one canonical username.
*/
func TestUsername_ConfusableFormsCollapse(t *testing.T) {
	// U+00E9 (precomposed) vs U+0065 U+0301 (combining accent).
	precomposed := "rené"
	decomposed := "rené"

	assert.Equal(t, normalize.Username(precomposed), normalize.Username(decomposed))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", normalize.Email("  Ada@Example.COM "))
	assert.Equal(t, "", normalize.Email("   "))
}
