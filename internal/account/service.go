// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package account

import (
	"context"
	"log/slog"

	"github.com/smartval/identity/internal/identity"
	"github.com/smartval/identity/pkg/normalize"
	"github.com/smartval/identity/pkg/pagination"
)

// Service implements profile and administration use cases.
type Service struct {
	accounts AccountRepository
	cache    ProfileCache
	logger   *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(accounts AccountRepository, cache ProfileCache, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		cache:    cache,
		logger:   logger,
	}
}

// # Profile Operations

/*
Profile returns the account record for the given username.

Description: Read-through cache. A cache hit skips the database entirely; a
miss loads from the repository and primes the cache. Cache failures degrade
to a plain database read — they never fail the request.

Parameters:
  - context: context.Context
  - username: string (the verified token subject)

Returns:
  - *identity.User: Hydrated account entity
  - error: apperr.NotFound or retrieval failures
*/
func (service *Service) Profile(context context.Context, username string) (*identity.User, error) {

	// Cache first. Errors are logged and ignored so a Redis outage does not
	// take profile reads down with it.
	if cached, err := service.cache.Get(context, username); err != nil {
		service.logger.Warn("profile cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	user, err := service.accounts.FindByUsername(context, username)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, user); err != nil {
		service.logger.Warn("profile cache write failed", "error", err)
	}

	return user, nil
}

/*
UpdateProfile applies the caller's changes to their own profile fields.

Description: Loads the current record, overwrites the mutable fields, and
persists. The cache entry is invalidated so the next read observes the
write.

Parameters:
  - context: context.Context
  - username: string (the verified token subject)
  - input: UpdateProfileInput

Returns:
  - *identity.User: Updated account entity
  - error: apperr.NotFound or persistence failures
*/
func (service *Service) UpdateProfile(context context.Context, username string, input UpdateProfileInput) (*identity.User, error) {
	user, err := service.accounts.FindByUsername(context, username)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = normalize.Email(input.Email)

	if err := service.accounts.Update(context, user); err != nil {
		return nil, err
	}

	// Invalidate rather than overwrite: the repository stamped updated_at,
	// so the next read re-primes the cache with the authoritative row.
	if err := service.cache.Invalidate(context, username); err != nil {
		service.logger.Warn("profile cache invalidation failed", "error", err)
	}

	return user, nil
}

// # Administration

/*
ListUsers returns a page of all accounts with pagination metadata.

Description: Admin-only listing. Pages come straight from the repository;
no caching, as admin reads are rare and must be fresh.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []identity.User: Page of accounts
  - *pagination.Meta: Page metadata (total, pages)
  - error: Retrieval failures
*/
func (service *Service) ListUsers(context context.Context, params pagination.Params) ([]identity.User, *pagination.Meta, error) {
	users, err := service.accounts.List(context, params.Limit, params.Offset())
	if err != nil {
		return nil, nil, err
	}

	total, err := service.accounts.Count(context)
	if err != nil {
		return nil, nil, err
	}

	meta := pagination.NewMeta(params.Page, params.Limit, total)
	return users, &meta, nil
}
