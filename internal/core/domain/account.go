package domain

import (
	"errors"
	"time"
)

// Role is the account-level privilege tier.
type Role string

const (
	RoleNone       Role = "none"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("access forbidden")

// ParseRole maps a stored role string to a Role. Unknown or empty values
// resolve to RoleNone so accounts created without a role field stay usable.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleInstructor:
		return RoleInstructor
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleNone
	}
}

// Elevated reports whether the role carries any privilege beyond a plain account.
func (r Role) Elevated() bool {
	return r == RoleInstructor || r == RoleAdmin
}

// Account models a registered user of the enrollment app. Email is the
// identity: unique, immutable, and the key every ownership check compares
// against.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
