package auth

import (
	"github.com/taha-arar/blog/internal/model"
)

// requirementKind discriminates the Requirement variants
type requirementKind int

const (
	kindPublic requirementKind = iota
	kindAuthenticated
	kindAnyOf
	kindSelfOrAny
)

// Requirement is the declarative access rule attached to a route. It is
// built once at route registration and never mutated at runtime.
type Requirement struct {
	kind  requirementKind
	roles []model.Role
}

// Public allows every request
func Public() Requirement {
	return Requirement{kind: kindPublic}
}

// Authenticated allows any request with a resolved identity
func Authenticated() Requirement {
	return Requirement{kind: kindAuthenticated}
}

// AnyOf allows identities whose role is in the given set
func AnyOf(roles ...model.Role) Requirement {
	return Requirement{kind: kindAnyOf, roles: roles}
}

// SelfOrAny allows identities whose role is in the given set, or whose
// id equals the id of the resource being accessed.
func SelfOrAny(roles ...model.Role) Requirement {
	return Requirement{kind: kindSelfOrAny, roles: roles}
}

// NeedsOwner reports whether the requirement compares against a
// resource owner id.
func (r Requirement) NeedsOwner() bool {
	return r.kind == kindSelfOrAny
}

// DenyReason classifies why a requirement rejected a request
type DenyReason string

const (
	DenyUnauthenticated  DenyReason = "unauthenticated"
	DenyInsufficientRole DenyReason = "insufficient_role"
)

// Decision is the outcome of evaluating a requirement
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

var allow = Decision{Allowed: true}

func deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// Decide evaluates a requirement against a request identity. It is a
// pure function, identity may be nil for anonymous requests, ownerID is
// only consulted for SelfOrAny requirements.
func Decide(identity *Identity, requirement Requirement, ownerID int64) Decision {
	if requirement.kind == kindPublic {
		return allow
	}

	if identity == nil {
		return deny(DenyUnauthenticated)
	}

	switch requirement.kind {
	case kindAuthenticated:
		return allow
	case kindAnyOf:
		if identity.HasAnyRole(requirement.roles...) {
			return allow
		}
	case kindSelfOrAny:
		if identity.HasAnyRole(requirement.roles...) || identity.ID == ownerID {
			return allow
		}
	}

	return deny(DenyInsufficientRole)
}
