// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

/*
Package identity implements the user authentication and account layer.

It defines the core domain entity (User) and the logic for registration,
credential verification, and token lifecycle.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
transport dependencies and encapsulates all business rules related to user
identity.
*/
package identity

import (
	"time"

	"github.com/smartval/identity/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account.
//
// The username is the unique, immutable key of the record. The role is a
// mandatory field — accounts are created with [sec.RoleDefault], never with
// a missing role.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair is the transport shape returned at login: a short-lived access
// token and a long-lived refresh token, both opaque signed strings.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// TokenTypeBearer is the only token_type this API issues.
const TokenTypeBearer = "bearer"

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername   = "username"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldToken      = "token"
	FieldTokenValid = "token_valid"
)
