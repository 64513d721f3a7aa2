package models

import "slices"

// User is the identity of the caller of an authenticated request.
// It is rebuilt from the verified access token on every request and never
// persisted.
type User struct {
	// ID is the token subject ("sub" claim).
	ID string `json:"id"`

	// Roles lists the realm roles granted to the user
	// ("realm_access.roles" claim).
	Roles []string `json:"roles"`
}

// HasRole reports whether the user was granted role.
func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}
