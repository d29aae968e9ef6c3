// Copyright (c) 2026 Smartval. All rights reserved.
// Author: platform@smartval.io

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartval/identity/internal/platform/sec"
)

/*
TestRole_Satisfies verifies exact-match role gating: no hierarchy, so admin
does not implicitly satisfy user, and vice versa.
*/
func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		name      string
		held      sec.Role
		required  sec.Role
		satisfied bool
	}{
		{"admin_matches_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"user_matches_user", sec.RoleUser, sec.RoleUser, true},
		{"user_denied_admin", sec.RoleUser, sec.RoleAdmin, false},
		{"admin_denied_user", sec.RoleAdmin, sec.RoleUser, false},
		{"unknown_role_denied", sec.Role("auditor"), sec.RoleAdmin, false},
		{"empty_role_denied", sec.Role(""), sec.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.satisfied, tt.held.Satisfies(tt.required))
		})
	}
}

func TestRoleDefault(t *testing.T) {
	assert.Equal(t, sec.RoleUser, sec.RoleDefault)
}
