// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleTenant indicates a resident who manages only their own records.
	RoleTenant Role = "tenant"
	// RoleAdmin indicates a property administrator.
	RoleAdmin Role = "admin"
)

// Capability names an operation gated by role.
type Capability string

const (
	// CapManageOwnRecords covers maintenance, payments, deliveries and receipts owned by the caller.
	CapManageOwnRecords Capability = "records:own"
	// CapAdminister covers counts, buildings and tenant assignment.
	CapAdminister Capability = "admin"
)

var roleCapabilities = map[Role][]Capability{
	RoleTenant: {CapManageOwnRecords},
	RoleAdmin:  {CapManageOwnRecords, CapAdminister},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleAdmin:
		return true
	default:
		return false
	}
}

// Can reports whether the role grants the capability. Unknown roles grant nothing.
func (r Role) Can(capability Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == capability {
			return true
		}
	}

	return false
}
