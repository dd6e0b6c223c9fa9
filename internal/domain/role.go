package domain

import "fmt"

// Role represents an account's access level.
// This is a value object that enforces the closed set of role values;
// role checks elsewhere are exact-match, never hierarchical.
type Role string

// Valid roles
const (
	RoleCustomer       Role = "customer"        // Browses and books properties
	RoleAgent          Role = "agent"           // Works leads for assigned properties
	RoleFranchiseOwner Role = "franchise_owner" // Manages a franchise's listings
	RoleAdmin          Role = "admin"           // Approves pending user accounts
)

// NewRole creates a new Role value object with validation
func NewRole(value string) (Role, error) {
	r := Role(value)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate checks if the role is valid
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleAgent, RoleFranchiseOwner, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("invalid role %q: must be customer, agent, franchise_owner, or admin", string(r))
	}
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// DashboardSegment returns the backend dashboard path segment for the role.
func (r Role) DashboardSegment() string {
	switch r {
	case RoleFranchiseOwner:
		return "franchise"
	case RoleAdmin:
		return "super-admin"
	default:
		return string(r)
	}
}

// AllRoles returns every valid role, in display order.
func AllRoles() []Role {
	return []Role{RoleCustomer, RoleAgent, RoleFranchiseOwner, RoleAdmin}
}
