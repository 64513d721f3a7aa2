package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RealmAccess is the role container issued by the OIDC provider.
type RealmAccess struct {
	Roles []string `json:"roles"`
}

// Claims is the claim set of a ligand access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// aud, iss) and adds the realm roles used for authorization.
type Claims struct {
	jwt.RegisteredClaims

	// RealmAccess carries the roles granted to the subject.
	RealmAccess RealmAccess `json:"realm_access"`
}

// User builds the request identity from the claims.
func (c *Claims) User() User {
	return User{
		ID:    c.Subject,
		Roles: c.RealmAccess.Roles,
	}
}
