package models

import "time"

// Credentials are the operator's hub login. The backend checks them with HTTP
// basic auth on POST /auth, and the gateway attaches them to every request
// after a successful login.
type Credentials struct {
	// Username is the hub operator login.
	Username string `json:"username"`

	// Password is the plaintext hub password. It is kept in memory only; the
	// TUI persists it sealed, never in clear.
	Password string `json:"password"`
}

// Empty reports whether no username was provided.
func (c Credentials) Empty() bool {
	return c.Username == ""
}

// StoredSession is the remembered TUI login as persisted in the preference
// store. Password holds the sealed (encrypted, base64) password.
type StoredSession struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	At       time.Time `json:"at"`
}
