package service

import (
	"testing"

	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMerged() models.MergedConfig {
	return models.MergedConfig{
		"lang":     "en-us",
		"logging":  map[string]any{"LOG_LEVEL": "INFO", "logs": map[string]any{"path": "/var/log"}},
		"units":    map[string]any{"system_unit": "imperial", "time_format": "half", "date": "MDY"},
		"location": map[string]any{"timezone": "America/Los_Angeles"},
		"api_keys": map[string]any{"alpha_vantage": "", "wolfram_alpha": "abc"},
		"hana":     map[string]any{"node_username": "neon_node", "node_password": "pw"},
		"iris":     map[string]any{"default_lang": "en-us", "languages": []any{"en-us"}},
		"skills":   map[string]any{"default_skills": []any{"neon-skill-alerts"}},
	}
}

func TestBuildSectionSave_NeonSectionsCarryOnlyThatKey(t *testing.T) {
	merged := sampleMerged()

	for _, key := range []models.SectionKey{
		models.SectionLogging, models.SectionUnits, models.SectionLocation,
		models.SectionAPIKeys, models.SectionSkills,
	} {
		t.Run(key.String(), func(t *testing.T) {
			save, err := BuildSectionSave(key, merged)
			require.NoError(t, err)

			assert.Equal(t, models.TargetNeon, save.Target)
			assert.Len(t, save.Partial, 1)
			assert.Equal(t, merged[string(key)], save.Partial[string(key)])
		})
	}
}

func TestBuildSectionSave_DianaSectionsCarryBoth(t *testing.T) {
	merged := sampleMerged()

	for _, key := range []models.SectionKey{models.SectionIRIS, models.SectionHANA} {
		t.Run(key.String(), func(t *testing.T) {
			save, err := BuildSectionSave(key, merged)
			require.NoError(t, err)

			assert.Equal(t, models.TargetDiana, save.Target)
			assert.Equal(t, models.Document{
				"iris": merged["iris"],
				"hana": merged["hana"],
			}, save.Partial)
		})
	}
}

func TestBuildSectionSave_DianaOmitsAbsentSection(t *testing.T) {
	merged := models.MergedConfig{"iris": map[string]any{"a": 1.0}}

	save, err := BuildSectionSave(models.SectionIRIS, merged)
	require.NoError(t, err)
	assert.Equal(t, models.Document{"iris": map[string]any{"a": 1.0}}, save.Partial)
	assert.NotContains(t, save.Partial, "hana")
}

func TestBuildSectionSave_General(t *testing.T) {
	save, err := BuildSectionSave(models.SectionGeneral, sampleMerged())
	require.NoError(t, err)

	assert.Equal(t, models.TargetNeon, save.Target)
	assert.Equal(t, models.Document{
		"LOG_LEVEL":   "INFO",
		"lang":        "en-us",
		"time_format": "half",
		"system_unit": "imperial",
	}, save.Partial)
}

func TestBuildSectionSave_GeneralSkipsMissing(t *testing.T) {
	merged := models.MergedConfig{"logging": map[string]any{"LOG_LEVEL": "DEBUG"}}

	save, err := BuildSectionSave(models.SectionGeneral, merged)
	require.NoError(t, err)
	assert.Equal(t, models.Document{"LOG_LEVEL": "DEBUG"}, save.Partial)
}

func TestBuildSectionSave_UnknownSection(t *testing.T) {
	_, err := BuildSectionSave("nope", sampleMerged())
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = BuildSectionSave(models.SectionIRIS, models.MergedConfig{})
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestBuildSectionSave_DoesNotAliasMerged(t *testing.T) {
	merged := sampleMerged()

	save, err := BuildSectionSave(models.SectionUnits, merged)
	require.NoError(t, err)

	save.Partial["units"].(map[string]any)["system_unit"] = "metric"
	assert.Equal(t, "imperial", merged["units"].(map[string]any)["system_unit"])
}
