// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingDependency is returned by NewHandler when the session
	// registry, the services factory or the validator is nil.
	ErrMissingDependency = errors.New("http handler dependency is missing")

	// ErrNoSessionCookie is logged when a protected page is requested
	// without a session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrSessionNotFound is logged when the cookie is valid but its session
	// was evicted or the server restarted.
	ErrSessionNotFound = errors.New("session not found")
)
