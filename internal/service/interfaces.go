// Package service holds the dashboard's client-side logic: the config store
// and section reconciler, the raw YAML editors, preferences, the auth gate and
// the debounced auto-save worker.
//
// One [ClientServices] bundle serves one operator: the terminal dashboard
// creates a single bundle, the web dashboard one per browser session.
package service

import (
	"context"

	"github.com/NeonGeckoCom/neon-hub-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ConfigService is the config store: the merged view of both backend
// documents plus per-section load and save status.
type ConfigService interface {
	// Load fetches both documents and replaces the merged config (Neon over
	// Diana). On failure the previous config is kept and LoadError is set.
	Load(ctx context.Context) error

	// Snapshot returns a deep copy of the current state.
	Snapshot() models.ConfigState

	// Section returns a copy of one section as shown on the dashboard. The
	// synthetic general section is assembled from its home sections.
	Section(key models.SectionKey) (models.Section, bool)

	// EditField converts raw text according to the current type of the field
	// and stores it. Only the addressed section changes.
	EditField(section models.SectionKey, key, raw string) error

	// SetField stores an already typed value, e.g. a select option.
	SetField(section models.SectionKey, key string, value any) error

	// FieldText renders a field back to editable text.
	FieldText(section models.SectionKey, key string) (string, bool)

	// SaveSection persists one section through the owning document. A second
	// call while the first is in flight fails with [ErrSaveInProgress].
	SaveSection(ctx context.Context, section models.SectionKey) error
}

// RawConfigService drives the raw YAML editors of the Advanced tab.
type RawConfigService interface {
	// Load fetches the target document and renders it as YAML with sorted
	// keys and two-space indentation.
	Load(ctx context.Context, target models.RawTarget) error

	// SetText replaces the buffer and validates it as YAML. An invalid buffer
	// is kept but cannot be saved.
	SetText(target models.RawTarget, text string) error

	// State returns a copy of the editor state.
	State(target models.RawTarget) models.RawEditorState

	// Save parses the buffer and posts it as JSON. The response replaces the
	// buffer.
	Save(ctx context.Context, target models.RawTarget) error
}

// PreferencesService persists client-local settings and keeps the gateway
// pointed at the chosen backend.
type PreferencesService interface {
	// ApplyBaseURL resolves the backend location (stored override, then
	// configured default, then origin) and points the gateway at it.
	ApplyBaseURL(ctx context.Context, origin string) (string, error)

	// SetBaseURL validates and stores a new override and re-points the
	// gateway. An empty value removes the override.
	SetBaseURL(ctx context.Context, raw string) (string, error)

	// StoredBaseURL returns the override, or "" when none is stored.
	StoredBaseURL(ctx context.Context) (string, error)

	ActiveTab(ctx context.Context) models.Tab
	SetActiveTab(ctx context.Context, tab models.Tab) error

	Theme(ctx context.Context) models.Theme
	SetTheme(ctx context.Context, theme models.Theme) error

	// Session returns the remembered login, or ok false.
	Session(ctx context.Context) (models.StoredSession, bool, error)
	SetSession(ctx context.Context, session models.StoredSession) error
	ClearSession(ctx context.Context) error
}

// AuthService is the login gate in front of the dashboard.
type AuthService interface {
	// Login checks creds against the backend and, on success, attaches them
	// to every subsequent gateway request. With remember set the credentials
	// are sealed and stored for the next start.
	Login(ctx context.Context, creds models.Credentials, remember bool) error

	// Restore logs in with the remembered session, if any. ok is false when
	// nothing is remembered or the backend no longer accepts it.
	Restore(ctx context.Context) (ok bool, err error)

	// Logout drops the credentials and forgets the remembered session.
	Logout(ctx context.Context) error

	// Username returns the logged-in operator, or "".
	Username() string
}

// AutoSaver saves a section once edits to it have paused.
type AutoSaver interface {
	// Touch (re)starts the debounce timer of section.
	Touch(section models.SectionKey)

	// Stop cancels pending timers and waits for running saves.
	Stop()
}
