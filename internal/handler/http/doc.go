// Package http implements the web dashboard.
//
// It serves server-rendered pages over chi: a login form, the tabbed
// configuration dashboard and the raw YAML editors. Every logged-in browser
// gets its own client services, kept in a [SessionRegistry] and found through
// a signed session cookie. Request tracing, access logging and response
// compression are handled by middleware in this package.
package http
