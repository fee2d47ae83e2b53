package store

import "errors"

var (
	// ErrPreferenceNotFound is returned by Get when no value is stored under
	// the requested scope and key.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrEmptyKey is returned when a repository method receives an empty
	// scope or key.
	ErrEmptyKey = errors.New("preference scope and key must not be empty")
)
