package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Role – immutable value object
// ---------------------------------------------------------------------------

// Role represents the access level of a customer record.
type Role struct {
	value string
}

const (
	roleAdmin    = "ADMIN"
	roleCustomer = "CUSTOMER"
)

var (
	RoleAdmin    = Role{value: roleAdmin}
	RoleCustomer = Role{value: roleCustomer}
)

var validRoles = map[string]Role{
	roleAdmin:    RoleAdmin,
	roleCustomer: RoleCustomer,
}

// NewRole creates a Role from a raw string.
func NewRole(s string) (Role, error) {
	v, ok := validRoles[s]
	if !ok {
		return Role{}, fmt.Errorf("invalid role: %q", s)
	}
	return v, nil
}

// String returns the string representation of the role.
func (r Role) String() string { return r.value }

// IsZero returns true if the role has not been initialised.
func (r Role) IsZero() bool { return r.value == "" }

// Equal returns true when both roles carry the same value.
func (r Role) Equal(other Role) bool { return r.value == other.value }
