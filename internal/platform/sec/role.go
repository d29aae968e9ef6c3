// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package sec

// # User Roles

// Role represents the authorization level granted to an account.
//
// Role is a mandatory field on every principal — never an optional
// attribute. Accounts created without an explicit role receive
// [RoleDefault].
type Role string

const (
	// Unrestricted administrative access
	RoleAdmin Role = "admin"

	// Default role for standard registered users
	RoleUser Role = "user"
)

// RoleDefault is assigned to every account at registration.
const RoleDefault = RoleUser

// # Role Gate

// Satisfies reports whether the role meets the required role.
//
// This is a single exact string match — no wildcards, no hierarchy. An
// admin is NOT implicitly a user; callers that want "admin or owner"
// semantics compose multiple checks rather than relying on a ladder.
func (r Role) Satisfies(required Role) bool {
	return r == required
}
