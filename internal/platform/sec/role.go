// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account by the
// hosted auth provider.
type UserRole string

const (
	// Full access, including deletions
	RoleAdmin UserRole = "admin"

	// Can create and edit catalog records
	RoleCurator UserRole = "curator"

	// Signed in, read-only
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
// Unknown roles rank below every known role.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleCurator:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
