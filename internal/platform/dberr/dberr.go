// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smartval/identity/internal/platform/apperr"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows            → 404 NOT_FOUND
//   - SQLSTATE 23505 (unique)  → 409 CONFLICT (the registration existence
//     check and the insert are not atomic; the unique constraint is the
//     authority and its violation surfaces here)
//   - context deadline/cancel  → 503 UNAVAILABLE (retryable, distinct from
//     bad credentials)
//   - anything else            → 500 INTERNAL_ERROR
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict(resource + " already exists")
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperr.Unavailable(err)
	}

	return apperr.Internal(err)
}

// IsUnavailable reports whether err should be treated as an upstream outage.
func IsUnavailable(err error) bool {
	ae := apperr.As(err)
	return ae != nil && ae.Code == "UNAVAILABLE"
}
