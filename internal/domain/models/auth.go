package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by a docshelf session token.
// Authentication here is a placeholder identity, not an access-control
// mechanism; the subject is only used for audit-log provenance.
type SessionClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}
