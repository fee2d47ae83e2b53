// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Document is a decoded JSON configuration document as returned by the hub
// backend. Values are whatever encoding/json produces for an untyped target:
// map[string]any, []any, string, float64, bool or nil.
type Document map[string]any

// NeonDocument is the backend-owned Neon configuration document. It holds most
// sections (logging, units, lang, api_keys, skills, hana, ...).
type NeonDocument = Document

// DianaDocument is the backend-owned Diana configuration document. It holds
// the iris section and, in later backend revisions, hana.
type DianaDocument = Document

// Section is the body of one top-level configuration section.
type Section map[string]any

// MergedConfig is the single view the dashboard edits: the Diana document
// shallow-merged with the Neon document applied on top.
type MergedConfig map[string]any

// SectionKey names a top-level configuration section.
type SectionKey string

const (
	// SectionGeneral is synthetic: it gathers a whitelist of keys from other
	// sections into one flat form.
	SectionGeneral SectionKey = "general"

	SectionLogging   SectionKey = "logging"
	SectionUnits     SectionKey = "units"
	SectionLocation  SectionKey = "location"
	SectionAPIKeys   SectionKey = "api_keys"
	SectionHANA      SectionKey = "hana"
	SectionIRIS      SectionKey = "iris"
	SectionSkills    SectionKey = "skills"
	SectionMQ        SectionKey = "MQ"
	SectionWebsocket SectionKey = "websocket"
)

// Keys collected into the synthetic general section.
const (
	KeyLogLevel   = "LOG_LEVEL"
	KeyLanguage   = "lang"
	KeyTimeFormat = "time_format"
	KeySystemUnit = "system_unit"
)

// String implements fmt.Stringer.
func (k SectionKey) String() string {
	return string(k)
}

// IsDiana reports whether the section is persisted in the Diana document.
func (k SectionKey) IsDiana() bool {
	return k == SectionIRIS || k == SectionHANA
}

// ConfigTarget identifies which backend document a write goes to.
type ConfigTarget string

const (
	TargetNeon  ConfigTarget = "neon"
	TargetDiana ConfigTarget = "diana"
)

// CloneValue deep-copies the JSON-shaped value v. Maps and slices are copied
// recursively; scalars are returned as is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = CloneValue(item)
		}
		return out
	case Section:
		return Section(CloneValue(map[string]any(val)).(map[string]any))
	case Document:
		return Document(CloneValue(map[string]any(val)).(map[string]any))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	default:
		return v
	}
}

// Clone returns a deep copy of the merged config.
func (m MergedConfig) Clone() MergedConfig {
	if m == nil {
		return nil
	}
	return MergedConfig(CloneValue(map[string]any(m)).(map[string]any))
}

// Section returns the named section as a map. ok is false when the section is
// missing or is not an object.
func (m MergedConfig) Section(key SectionKey) (Section, bool) {
	raw, exists := m[string(key)]
	if !exists {
		return nil, false
	}
	switch s := raw.(type) {
	case map[string]any:
		return Section(s), true
	case Section:
		return s, true
	default:
		return nil, false
	}
}
