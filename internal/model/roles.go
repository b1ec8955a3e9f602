package model

import "strings"

// Role is a user's role. Authorization checks are set membership over
// these values, the declaration order carries no hierarchy.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleAuthor     Role = "AUTHOR"
	// RoleVisitor is the lowest privilege role, assigned on registration.
	RoleVisitor Role = "VISITOR"
)

// authorityPrefix is the canonical prefix for role claims in tokens.
const authorityPrefix = "ROLE_"

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleAuthor, RoleVisitor:
		return true
	default:
		return false
	}
}

// Authority renders the role as its canonical authority string,
// e.g. ADMIN becomes ROLE_ADMIN.
func (r Role) Authority() string {
	return authorityPrefix + string(r)
}

// AllRoles returns all predefined roles
func AllRoles() []Role {
	return []Role{
		RoleSuperAdmin,
		RoleAdmin,
		RoleAuthor,
		RoleVisitor,
	}
}

// ParseRole safely parses a string into a Role
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	return role, role.IsValid()
}

// RoleFromAuthority parses a canonical authority string back into a Role
func RoleFromAuthority(authority string) (Role, bool) {
	if !strings.HasPrefix(authority, authorityPrefix) {
		return "", false
	}
	return ParseRole(strings.TrimPrefix(authority, authorityPrefix))
}
