// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// SectionSave is the write that persists one section: the owning document
// and the partial to post to it.
type SectionSave struct {
	Target  models.ConfigTarget
	Partial models.Document
}

// generalField ties a field of the synthetic general section to where it
// lives in the merged config. An empty Home means a top-level key.
type generalField struct {
	Key  string
	Home models.SectionKey
}

var generalFields = []generalField{
	{Key: models.KeyLogLevel, Home: models.SectionLogging},
	{Key: models.KeyLanguage},
	{Key: models.KeyTimeFormat, Home: models.SectionUnits},
	{Key: models.KeySystemUnit, Home: models.SectionUnits},
}

func lookupGeneralField(key string) (generalField, bool) {
	for _, f := range generalFields {
		if f.Key == key {
			return f, true
		}
	}
	return generalField{}, false
}

// generalValue reads one general field from its home.
func generalValue(merged models.MergedConfig, f generalField) (any, bool) {
	if f.Home == "" {
		v, ok := merged[f.Key]
		return v, ok
	}

	section, ok := merged.Section(f.Home)
	if !ok {
		return nil, false
	}
	v, ok := section[f.Key]
	return v, ok
}

// GeneralSection gathers the general fields present in merged into one flat
// section. Missing fields are skipped.
func GeneralSection(merged models.MergedConfig) models.Section {
	out := models.Section{}
	for _, f := range generalFields {
		if v, ok := generalValue(merged, f); ok {
			out[f.Key] = models.CloneValue(v)
		}
	}
	return out
}

// BuildSectionSave decides which document persists section and builds the
// partial from merged. It never mutates merged.
//
//   - iris and hana go to Diana together, each included only when present;
//   - general goes to Neon as a flat object of the whitelisted fields;
//   - any other section present in merged goes to Neon as {section: value}.
func BuildSectionSave(section models.SectionKey, merged models.MergedConfig) (SectionSave, error) {
	switch {
	case section.IsDiana():
		partial := models.Document{}
		for _, key := range []models.SectionKey{models.SectionIRIS, models.SectionHANA} {
			if v, ok := merged[string(key)]; ok {
				partial[string(key)] = models.CloneValue(v)
			}
		}
		if len(partial) == 0 {
			return SectionSave{}, fmt.Errorf("%w: %s", ErrUnknownSection, section)
		}
		return SectionSave{Target: models.TargetDiana, Partial: partial}, nil

	case section == models.SectionGeneral:
		return SectionSave{
			Target:  models.TargetNeon,
			Partial: models.Document(GeneralSection(merged)),
		}, nil

	default:
		v, ok := merged[string(section)]
		if !ok {
			return SectionSave{}, fmt.Errorf("%w: %s", ErrUnknownSection, section)
		}
		return SectionSave{
			Target:  models.TargetNeon,
			Partial: models.Document{string(section): models.CloneValue(v)},
		}, nil
	}
}
