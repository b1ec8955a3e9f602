package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	for _, role := range AllRoles() {
		assert.True(t, role.IsValid(), "expected %s to be valid", role)
	}
	assert.False(t, Role("EDITOR").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Authority(t *testing.T) {
	assert.Equal(t, "ROLE_SUPERADMIN", RoleSuperAdmin.Authority())
	assert.Equal(t, "ROLE_VISITOR", RoleVisitor.Authority())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		role  Role
		ok    bool
	}{
		{input: "ADMIN", role: RoleAdmin, ok: true},
		{input: "admin", role: RoleAdmin, ok: true},
		{input: " author ", role: RoleAuthor, ok: true},
		{input: "EDITOR", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		role, ok := ParseRole(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.role, role)
		}
	}
}

func TestRoleFromAuthority(t *testing.T) {
	role, ok := RoleFromAuthority("ROLE_ADMIN")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = RoleFromAuthority("ADMIN")
	assert.False(t, ok)

	_, ok = RoleFromAuthority("ROLE_EDITOR")
	assert.False(t, ok)
}
