// Package entity contains the core business objects of the client.
package entity

// Role represents the kind of account the marketplace recognises.
type Role string

const (
	// RoleGuest indicates an unauthenticated visitor. A token that fails to
	// decode or carries no role resolves to this role.
	RoleGuest Role = "Guest"
	// RoleUser indicates a regular subscriber.
	RoleUser Role = "User"
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "Admin"
	// RoleVendor indicates a meal vendor (dabba wala).
	RoleVendor Role = "Vendor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a value the marketplace issues in tokens.
// Guest is derived, never issued.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleVendor:
		return true
	default:
		return false
	}
}

// RoleFromString maps a token claim value onto a Role, falling back to
// Guest for anything unknown.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleGuest
}
