// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package dberr_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartval/identity/internal/platform/apperr"
	"github.com/smartval/identity/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the mapping from storage errors to the
application taxonomy: missing rows are 404, unique violations are 409 (the
final authority on registration races), deadlines and cancellations are a
retryable 503, and anything else is an internal 500.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			"no_rows_is_not_found",
			pgx.ErrNoRows,
			"NOT_FOUND",
			http.StatusNotFound,
		},
		{
			"wrapped_no_rows_is_not_found",
			fmt.Errorf("query users: %w", pgx.ErrNoRows),
			"NOT_FOUND",
			http.StatusNotFound,
		},
		{
			"unique_violation_is_conflict",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"},
			"CONFLICT",
			http.StatusConflict,
		},
		{
			"deadline_is_unavailable",
			context.DeadlineExceeded,
			"UNAVAILABLE",
			http.StatusServiceUnavailable,
		},
		{
			"cancellation_is_unavailable",
			context.Canceled,
			"UNAVAILABLE",
			http.StatusServiceUnavailable,
		},
		{
			"wrapped_deadline_is_unavailable",
			fmt.Errorf("exec: %w", context.DeadlineExceeded),
			"UNAVAILABLE",
			http.StatusServiceUnavailable,
		},
		{
			"other_pg_error_is_internal",
			&pgconn.PgError{Code: pgerrcode.SyntaxError},
			"INTERNAL_ERROR",
			http.StatusInternalServerError,
		},
		{
			"arbitrary_error_is_internal",
			fmt.Errorf("connection reset"),
			"INTERNAL_ERROR",
			http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "User")

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, dberr.Wrap(nil, "User"))
}

/*
TestWrap_ResourceNaming verifies the resource name flows into the
client-facing messages without leaking storage details.
*/
func TestWrap_ResourceNaming(t *testing.T) {
	notFound := dberr.Wrap(pgx.ErrNoRows, "User")
	assert.Equal(t, "User not found", notFound.Error())

	conflict := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "Username")
	assert.Equal(t, "Username already exists", conflict.Error())
	assert.NotContains(t, conflict.Error(), "23505")
}

func TestIsUnavailable(t *testing.T) {
	assert.True(t, dberr.IsUnavailable(dberr.Wrap(context.DeadlineExceeded, "User")))
	assert.False(t, dberr.IsUnavailable(dberr.Wrap(pgx.ErrNoRows, "User")))
	assert.False(t, dberr.IsUnavailable(nil))
}
