// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

/*
Package account implements profile self-service and administration.

It reads and updates the accounts created by the identity package, layering
a Redis read-through cache over profile lookups. Credential material never
flows through this package: passwords, hashes, and tokens belong to the
identity layer.
*/
package account

import (
	"context"

	"github.com/smartval/identity/internal/identity"
)

// # Contracts

// AccountRepository defines the data access required for profile operations.
//
// The identity package's PostgreSQL repository satisfies this contract; the
// narrower interface keeps account code unable to create users or touch
// password hashes.
type AccountRepository interface {

	/*
		FindByUsername returns the account with the given canonical username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *identity.User: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*identity.User, error)

	/*
		Update persists changes to mutable profile fields.

		Parameters:
		  - context: context.Context
		  - user: *identity.User

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, user *identity.User) error

	/*
		List returns a page of accounts ordered by creation time.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []identity.User: Page of hydrated entities
		  - error: Retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]identity.User, error)

	/*
		Count returns the total number of accounts.

		Parameters:
		  - context: context.Context

		Returns:
		  - int: Total account count
		  - error: Retrieval failures
	*/
	Count(context context.Context) (int, error)
}

// ProfileCache defines the read-through cache contract for profile lookups.
//
// A cache miss is not an error: Get returns (nil, nil) so callers fall
// through to the repository without special-casing.
type ProfileCache interface {

	// Get returns the cached profile for username, or (nil, nil) on a miss.
	Get(context context.Context, username string) (*identity.User, error)

	// Set stores the profile under its username key with the standard TTL.
	Set(context context.Context, user *identity.User) error

	// Invalidate drops the cached profile after a write.
	Invalidate(context context.Context, username string) error
}

// UpdateProfileInput holds the mutable profile fields a caller may change.
//
// The username is taken from the verified token subject, never from the
// request body.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}
