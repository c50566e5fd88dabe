// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is a portal account: a tenant or an administrator.
type User struct {
	ID           uint
	Email        string // Normalised (trimmed, lower-case) login identifier.
	PasswordHash string
	Role         Role
	BuildingID   *uint     // nil when the user is not assigned to a building.
	Building     *Building // Populated by listing queries that preload it.
	CreatedAt    time.Time
}

// IsTenant reports whether the user has the tenant role.
func (u *User) IsTenant() bool {
	return u.Role == RoleTenant
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail trims and lower-cases an email address so that lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
