// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package identity

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Implementations must guarantee username uniqueness at the storage layer
// (unique constraint): the service's existence check and the insert are not
// atomic, so the constraint is the final authority on registration races.
type UserRepository interface {

	/*
		FindByUsername returns the account with the given canonical username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound, apperr.Unavailable, or internal failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on a duplicate username, or storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		Update persists changes to mutable profile fields. The username and
		password hash are never touched through this operation.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, user *User) error

	/*
		List returns a page of accounts ordered by creation time.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []User: Page of hydrated entities
		  - error: Retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]User, error)

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
