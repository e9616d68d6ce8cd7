package domain

import "slices"

// Role represents a session role in the system
type Role string

const (
	// RoleAdmin is the platform operator. Admins provision and manage
	// tenant accounts and never own catalog or ledger data themselves.
	RoleAdmin Role = "admin"

	// RoleClient is a tenant session with access to its own products,
	// cart and sales only.
	RoleClient Role = "client"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleClient}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
