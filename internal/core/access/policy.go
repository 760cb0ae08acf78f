// Package access implements the gateway's authorization decision: a pure
// predicate over a route's declared policy, the verified caller identity,
// and the caller's resolved role. It performs no I/O; identity verification
// and role resolution happen before a policy is evaluated.
package access

import "github.com/summercamp/enrollment-api/internal/core/domain"

// Decision is the outcome of evaluating a policy against one request.
type Decision int

const (
	// Permit allows the request through to the resource handler.
	Permit Decision = iota
	// DenyUnauthorized means no verified identity was presented. It always
	// wins over any other outcome: the decision fails closed before role or
	// ownership checks run.
	DenyUnauthorized
	// DenyForbidden means the caller is authenticated but fails the route's
	// ownership or role requirement.
	DenyForbidden
	// Empty applies only to identity-bound routes invoked without a subject
	// identity: the route answers with an empty result set instead of an
	// error. List endpoints render it as 200 with an empty array.
	Empty
)

func (d Decision) String() string {
	switch d {
	case Permit:
		return "permit"
	case DenyUnauthorized:
		return "unauthorized"
	case DenyForbidden:
		return "forbidden"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Policy declares a route's sensitivity at registration time.
//
// The zero value is unusable on purpose: routes must declare one of the
// constructors so sensitivity is visible at the registration site.
type Policy struct {
	public       bool
	bindIdentity bool
	requiredRole domain.Role
}

// Public requires no identity at all.
func Public() Policy {
	return Policy{public: true}
}

// IdentityBound requires the verified identity to equal the identity named
// in the request path or query.
func IdentityBound() Policy {
	return Policy{bindIdentity: true}
}

// RoleBound requires the caller's resolved role to equal role.
func RoleBound(role domain.Role) Policy {
	return Policy{requiredRole: role}
}

// WithRole adds a role requirement on top of an identity-bound policy.
// Identity match is evaluated first, then the role.
func (p Policy) WithRole(role domain.Role) Policy {
	p.requiredRole = role
	return p
}

// RequiresIdentity reports whether the policy needs a verified credential.
func (p Policy) RequiresIdentity() bool {
	return !p.public
}

// RequiresRole returns the role the policy demands, or RoleNone.
func (p Policy) RequiresRole() domain.Role {
	if p.requiredRole == "" {
		return domain.RoleNone
	}
	return p.requiredRole
}

// Request carries the already-resolved inputs for one authorization check.
type Request struct {
	// Identity is the email extracted from a verified credential. Empty
	// means verification was skipped or rejected.
	Identity string
	// Subject is the identity the route is about, taken from the request
	// path or query. Empty when the parameter is absent.
	Subject string
	// Role is the caller's persisted role as resolved from the account store.
	Role domain.Role
}

// Authorize evaluates the policy. Precedence: unauthenticated short-circuits
// first, then identity binding, then the role requirement.
func (p Policy) Authorize(req Request) Decision {
	if p.public {
		return Permit
	}
	if req.Identity == "" {
		return DenyUnauthorized
	}
	if p.bindIdentity {
		if req.Subject == "" {
			return Empty
		}
		if req.Subject != req.Identity {
			return DenyForbidden
		}
	}
	if p.requiredRole != "" && req.Role != p.requiredRole {
		return DenyForbidden
	}
	return Permit
}
