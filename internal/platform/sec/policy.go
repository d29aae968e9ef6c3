// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package sec

import (
	"fmt"
	"strings"
	"unicode"
)

// PasswordPolicy validates candidate passwords before they reach the hasher.
//
// # Configuration
//
// Every rule is independently toggleable and the whole struct is plain data,
// so behavior changes with configuration, never with code. All enabled rules
// are conjunctive — there is no partial credit.
type PasswordPolicy struct {
	// MinLength is the minimum number of characters (runes).
	MinLength int
	// Uppercase requires at least one uppercase letter.
	Uppercase bool
	// Lowercase requires at least one lowercase letter.
	Lowercase bool
	// Digits requires at least one decimal digit.
	Digits bool
	// Special requires at least one non-alphanumeric character.
	Special bool
}

// DefaultPasswordPolicy returns the standard production policy:
// length ≥ 8 with at least one uppercase, lowercase, digit, and special
// character.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength: 8,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Special:   true,
	}
}

// Validate reports whether the password satisfies every enabled rule.
//
// Pure function: no side effects, no logging of the candidate password.
func (p PasswordPolicy) Validate(password string) bool {
	runes := []rune(password)
	if len(runes) < p.MinLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if p.Uppercase && !hasUpper {
		return false
	}
	if p.Lowercase && !hasLower {
		return false
	}
	if p.Digits && !hasDigit {
		return false
	}
	if p.Special && !hasSpecial {
		return false
	}

	return true
}

// Describe returns a human-readable summary of the enabled rules, suitable
// for a validation error message. It never echoes the candidate password.
func (p PasswordPolicy) Describe() string {
	parts := []string{fmt.Sprintf("at least %d characters", p.MinLength)}
	if p.Uppercase {
		parts = append(parts, "an uppercase letter")
	}
	if p.Lowercase {
		parts = append(parts, "a lowercase letter")
	}
	if p.Digits {
		parts = append(parts, "a digit")
	}
	if p.Special {
		parts = append(parts, "a special character")
	}
	return "Password must contain " + strings.Join(parts, ", ")
}
