package models

import "time"

// RawTarget names a backend document editable in the raw YAML editor.
type RawTarget string

const (
	// RawNeonUser is the Neon user configuration file (neon.yaml).
	RawNeonUser RawTarget = "neon_user_config"
	// RawDiana is the Diana configuration file (diana.yaml).
	RawDiana RawTarget = "diana_config"
)

// RawTargets lists the raw editors in display order.
var RawTargets = []RawTarget{RawNeonUser, RawDiana}

// Path returns the backend endpoint serving the target.
func (t RawTarget) Path() string {
	return "/v1/" + string(t)
}

// Title returns the heading shown above the editor.
func (t RawTarget) Title() string {
	switch t {
	case RawNeonUser:
		return "Neon Configuration"
	case RawDiana:
		return "Diana Configuration"
	default:
		return string(t)
	}
}

// Valid reports whether t is a known raw editor target.
func (t RawTarget) Valid() bool {
	return t == RawNeonUser || t == RawDiana
}

// RawEditorState is a point-in-time copy of one raw YAML editor.
type RawEditorState struct {
	Target RawTarget `json:"target"`

	// Text is the buffer as last edited, or as rendered from the backend.
	Text string `json:"text"`

	// Valid is false while Text does not parse as YAML.
	Valid bool `json:"valid"`
	// ParseError is the YAML error message while Valid is false.
	ParseError string `json:"parse_error,omitempty"`

	// Dirty is true when Text differs from the last loaded or saved text.
	Dirty bool `json:"dirty"`

	Loading bool `json:"loading"`
	Saving  bool `json:"saving"`

	// LoadError and SaveError hold the last failure of each operation.
	LoadError string `json:"load_error,omitempty"`
	SaveError string `json:"save_error,omitempty"`

	LastRefresh time.Time `json:"last_refresh"`
}

// CanSave reports whether the buffer may be sent to the backend.
func (s RawEditorState) CanSave() bool {
	return s.Valid && !s.Loading && !s.Saving
}
