package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. [*FetchError] and [*SaveError] unwrap to one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrNotJSON is returned when a 2xx reply does not carry a JSON body.
	ErrNotJSON = errors.New("response is not JSON")
	// ErrTransport wraps network failures (refused, timeout, DNS).
	ErrTransport = errors.New("backend unreachable")
	// ErrInvalidBaseURL is returned by SetBaseURL for unusable locations.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// FetchError describes a failed read of a backend document.
type FetchError struct {
	// Document is the endpoint name, e.g. "neon_config".
	Document string
	// StatusCode is the HTTP status, zero for transport failures.
	StatusCode int
	// Message is a human readable reason.
	Message string

	Err error
}

func (e *FetchError) Error() string {
	return formatError("fetch", e.Document, e.StatusCode, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SaveError describes a failed write of a backend document.
type SaveError struct {
	Document   string
	StatusCode int
	Message    string

	Err error
}

func (e *SaveError) Error() string {
	return formatError("save", e.Document, e.StatusCode, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

func formatError(op, document string, status int, message string) string {
	if status == 0 {
		return fmt.Sprintf("failed to %s %s: %s", op, document, message)
	}
	return fmt.Sprintf("failed to %s %s: HTTP %d: %s", op, document, status, message)
}
