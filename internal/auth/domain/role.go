// Package domain defines the authentication and authorization domain models:
// roles, authenticated identities and the role gate.
package domain

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	// RoleHunter is an analyst who uploads logs and asks questions about them.
	RoleHunter Role = "Hunter"

	// RoleGuardian is an administrator with access to the dashboard.
	RoleGuardian Role = "Guardian"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleHunter, RoleGuardian:
		return true
	default:
		return false
	}
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a stored or transmitted value into a Role.
// The comparison is exact; any other value fails with ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// RequireRole returns the identity unchanged when it carries the required role
// and ErrAuthorizationFailed otherwise.
func RequireRole(identity *Identity, required Role) (*Identity, error) {
	if identity == nil {
		return nil, ErrAuthenticationFailed
	}
	if identity.Role != required {
		return nil, ErrAuthorizationFailed
	}
	return identity, nil
}
