// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages shared by the terminal and
// web dashboards.
//
// All Msg* constants are human-readable strings rendered in error banners
// or status lines. Keeping them in one place keeps the wording of both front
// ends identical.
package app

const (
	// MsgInvalidDataProvided is shown when a submitted form cannot be decoded
	// or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is shown when the backend rejects the supplied
	// username/password combination.
	MsgInvalidLoginPassword = "Invalid username or password"

	// MsgLoginRequired is shown when username or password is left empty.
	MsgLoginRequired = "Username and password are required"

	// MsgSessionExpired is shown when the backend starts rejecting the stored
	// credentials after login.
	MsgSessionExpired = "Session expired, please log in again"

	// MsgBackendUnreachable is shown for network failures: refused
	// connections, timeouts, unknown hosts.
	MsgBackendUnreachable = "Backend unreachable, check the base URL"

	// MsgNotJSON is shown when the backend answers with something other than
	// JSON, which usually means the base URL points at the wrong service.
	MsgNotJSON = "Backend did not return JSON, check the base URL"

	// MsgInvalidBaseURL is shown when the base URL editor gets an address
	// that is not an http(s) URL with a host.
	MsgInvalidBaseURL = "Invalid base URL: use http(s)://host[:port]"

	// MsgCannotSaveInvalidYAML is shown when saving a raw editor buffer that
	// does not parse.
	MsgCannotSaveInvalidYAML = "Cannot save invalid YAML"

	// MsgSaveInProgress is shown when a section is saved again before the
	// previous save returned.
	MsgSaveInProgress = "Save already in progress"

	// MsgStoredAsText is shown when text typed into an object field is not
	// valid JSON and was stored verbatim.
	MsgStoredAsText = "Not valid JSON, stored as text"

	// MsgInternalServerError is shown when an unexpected failure occurs that
	// the operator cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is logged when the web session cookie is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
)
