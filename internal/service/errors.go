package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSection is returned for a section key that is neither
	// synthetic nor present in the merged config.
	ErrUnknownSection = errors.New("unknown config section")

	// ErrSaveInProgress is returned when a save of the same section is
	// already in flight.
	ErrSaveInProgress = errors.New("save already in progress")

	// ErrNotLoaded is returned by edits before the first successful Load.
	ErrNotLoaded = errors.New("configuration not loaded")

	// ErrSectionNotObject is returned when editing a field of a section whose
	// value is not an object.
	ErrSectionNotObject = errors.New("section is not an object")

	// ErrInvalidYAML is returned when saving a raw editor buffer that does not
	// parse. Use errors.As with [*ParseError] for details.
	ErrInvalidYAML = errors.New("invalid YAML")

	// ErrNotMapping is returned when the YAML root is not a mapping.
	ErrNotMapping = errors.New("YAML document must be a mapping")

	// ErrUnknownTarget is returned for an unknown raw editor target.
	ErrUnknownTarget = errors.New("unknown raw config target")

	// ErrInvalidTab is returned when persisting an unknown tab.
	ErrInvalidTab = errors.New("invalid tab")

	// ErrNoSessionStore is returned when a session should be remembered
	// without a configured secret key.
	ErrNoSessionStore = errors.New("remembering sessions is disabled")
)

// ParseError describes why a raw editor buffer is not valid YAML.
type ParseError struct {
	Target string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Target, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidYAML, e.Err}
}
