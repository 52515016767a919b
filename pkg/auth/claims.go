// Package auth provides JWT validation and the authorization predicates used
// by the loan service boundary: "is administrator" and "acts for this
// customer". The service itself performs no identity management; tokens are
// issued by the surrounding platform.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role constants. The platform issues exactly one role per token.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// Claims represents the JWT claims carried by platform tokens. Subject is
// the customer ID for CUSTOMER tokens and an operator ID for ADMIN tokens.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the token carries the administrator role.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanActFor reports whether the caller may invoke loan operations on behalf
// of the given customer: administrators always, customers only for
// themselves.
func (c Claims) CanActFor(customerID string) bool {
	if c.IsAdmin() {
		return true
	}
	return c.Subject == customerID
}
