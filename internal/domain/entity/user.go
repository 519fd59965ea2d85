// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the system: a caregiver, clinician, or administrator.
// The password hash is never stored here; it lives in a separate Credential
// record so a User can be serialized without leaking secrets.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Username  string    // Login identifier, globally unique.
	Email     string    // Contact email, globally unique.
	FirstName string
	LastName  string
	IsActive  bool // Whether the account may authenticate.
	IsStaff   bool // Whether the account has admin privileges.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roles derives the role set encoded into access tokens from the user's flags.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.IsStaff {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
