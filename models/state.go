package models

import "time"

// ConfigState is a point-in-time copy of the dashboard's config store.
type ConfigState struct {
	// Config is the merged Neon-over-Diana configuration.
	Config MergedConfig `json:"config"`

	// Loading is true while a full fetch is in flight.
	Loading bool `json:"loading"`

	// LoadError is the message of the last failed full fetch.
	LoadError string `json:"load_error,omitempty"`

	// Saving lists sections with a save in flight.
	Saving map[SectionKey]bool `json:"saving,omitempty"`

	// SaveErrors holds the last save failure per section.
	SaveErrors map[SectionKey]string `json:"save_errors,omitempty"`

	// ParseNotes holds the last JSON parse failure per section and field,
	// keyed "section.field". The raw text was stored instead.
	ParseNotes map[string]string `json:"parse_notes,omitempty"`

	// LastRefresh is when the config was last loaded from the backend.
	LastRefresh time.Time `json:"last_refresh"`
}

// IsSaving reports whether a save of section is in flight.
func (s ConfigState) IsSaving(section SectionKey) bool {
	return s.Saving[section]
}

// SaveError returns the last save error message of section, if any.
func (s ConfigState) SaveError(section SectionKey) string {
	return s.SaveErrors[section]
}
