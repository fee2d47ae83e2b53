// Package utils provides general-purpose helpers shared by the dashboard
// packages: typed context keys, JSON response writing, the resty client
// wrapper, session token signing and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. Using a dedicated type
// prevents collisions with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey stores the web session identifier in the request context.
var SessionIDCtxKey = contextKey("sessionID")

// UsernameCtxKey stores the logged-in operator name in the request context.
var UsernameCtxKey = contextKey("username")

// WithSession returns a copy of ctx carrying the session identifier and the
// operator name.
func WithSession(ctx context.Context, sessionID, username string) context.Context {
	ctx = context.WithValue(ctx, SessionIDCtxKey, sessionID)
	return context.WithValue(ctx, UsernameCtxKey, username)
}

// GetSessionIDFromContext retrieves the web session identifier. ok is false
// when the value is missing or empty.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}

// GetUsernameFromContext retrieves the operator name.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
