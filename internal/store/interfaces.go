// Package store persists client-local dashboard state in SQLite.
//
// Preferences are string values addressed by (scope, key). The terminal
// dashboard uses [LocalScope]; the web dashboard scopes values by operator
// name so two operators sharing one server keep their own settings.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/preferences_repository_mock.go -package=mock

// LocalScope is the preference scope of the terminal dashboard.
const LocalScope = "local"

// PreferencesRepository is the low-level key-value store behind
// PreferencesService.
type PreferencesRepository interface {
	// Get returns the stored value, or [ErrPreferenceNotFound].
	Get(ctx context.Context, scope, key string) (string, error)
	// Set inserts or replaces the value.
	Set(ctx context.Context, scope, key, value string) error
	// Delete removes the value. Deleting a missing key is not an error.
	Delete(ctx context.Context, scope, key string) error
}
