package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps the signed session cookie of the web dashboard.
//
// The subject ("sub") claim carries the operator username and the JWT ID
// ("jti") claim the server-side session identifier.
type SessionToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form placed in the cookie.
	SignedString string `json:"-"`

	// Username is the parsed "sub" claim.
	Username string `json:"-"`

	// SessionID is the parsed "jti" claim.
	SessionID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
