// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

// Package normalize canonicalizes user-supplied identifiers before they are
// stored or compared.
//
// # Why normalize usernames?
//
// The username is the unique key of an account. Without canonicalization,
// "Alice", "alice" and a fullwidth "ａｌｉｃｅ" would register as three
// distinct accounts, enabling impersonation. Canonicalizing at the boundary
// means the database unique constraint does the rest.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Username converts a raw username into its canonical storage form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (folds compatibility variants: ﬁ → fi, ａ → a).
// 2. Lowercases.
// 3. Trims surrounding whitespace.
func Username(raw string) string {
	canonical := norm.NFKC.String(raw)
	canonical = strings.ToLower(canonical)
	return strings.TrimSpace(canonical)
}

// Email canonicalizes an email address for lookups.
//
// Only the trivial, universally safe folds are applied; mailbox-local
// conventions like gmail dot-stripping are deliberately not.
func Email(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
