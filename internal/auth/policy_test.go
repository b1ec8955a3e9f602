package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taha-arar/blog/internal/model"
)

func TestDecide(t *testing.T) {
	admin := &Identity{ID: 1, Email: "admin@example.com", Role: model.RoleAdmin}
	visitor := &Identity{ID: 2, Email: "visitor@example.com", Role: model.RoleVisitor}
	author := &Identity{ID: 5, Email: "author@example.com", Role: model.RoleAuthor}

	tests := []struct {
		name        string
		identity    *Identity
		requirement Requirement
		ownerID     int64
		allowed     bool
		reason      DenyReason
	}{
		{
			name:        "public allows anonymous",
			identity:    nil,
			requirement: Public(),
			allowed:     true,
		},
		{
			name:        "public allows authenticated",
			identity:    visitor,
			requirement: Public(),
			allowed:     true,
		},
		{
			name:        "authenticated denies anonymous",
			identity:    nil,
			requirement: Authenticated(),
			reason:      DenyUnauthenticated,
		},
		{
			name:        "authenticated allows any identity",
			identity:    visitor,
			requirement: Authenticated(),
			allowed:     true,
		},
		{
			name:        "any-of denies anonymous before checking roles",
			identity:    nil,
			requirement: AnyOf(model.RoleSuperAdmin, model.RoleAdmin),
			reason:      DenyUnauthenticated,
		},
		{
			name:        "any-of allows member role",
			identity:    admin,
			requirement: AnyOf(model.RoleSuperAdmin, model.RoleAdmin),
			allowed:     true,
		},
		{
			name:        "any-of denies non-member role",
			identity:    visitor,
			requirement: AnyOf(model.RoleSuperAdmin, model.RoleAdmin),
			reason:      DenyInsufficientRole,
		},
		{
			name:        "self-or-any allows privileged role regardless of owner",
			identity:    admin,
			requirement: SelfOrAny(model.RoleSuperAdmin, model.RoleAdmin),
			ownerID:     99,
			allowed:     true,
		},
		{
			name:        "self-or-any allows the owner",
			identity:    author,
			requirement: SelfOrAny(model.RoleSuperAdmin, model.RoleAdmin),
			ownerID:     5,
			allowed:     true,
		},
		{
			name:        "self-or-any denies a stranger",
			identity:    author,
			requirement: SelfOrAny(model.RoleSuperAdmin, model.RoleAdmin),
			ownerID:     6,
			reason:      DenyInsufficientRole,
		},
		{
			name:        "self-or-any denies anonymous",
			identity:    nil,
			requirement: SelfOrAny(model.RoleSuperAdmin),
			ownerID:     5,
			reason:      DenyUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Decide(tt.identity, tt.requirement, tt.ownerID)
			assert.Equal(t, tt.allowed, decision.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.reason, decision.Reason)
			}
		})
	}
}

func TestRequirement_NeedsOwner(t *testing.T) {
	assert.False(t, Public().NeedsOwner())
	assert.False(t, Authenticated().NeedsOwner())
	assert.False(t, AnyOf(model.RoleAdmin).NeedsOwner())
	assert.True(t, SelfOrAny(model.RoleAdmin).NeedsOwner())
}
