package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/mock"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfigService(t *testing.T) (*configService, *mock.MockHubAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	hub := mock.NewMockHubAdapter(ctrl)
	svc := NewConfigService(hub, logger.Nop()).(*configService)
	return svc, hub
}

func loadedConfigService(t *testing.T, neon, diana models.Document) (*configService, *mock.MockHubAdapter) {
	t.Helper()
	svc, hub := newTestConfigService(t)
	hub.EXPECT().FetchNeonConfig(gomock.Any()).Return(neon, nil)
	hub.EXPECT().FetchDianaConfig(gomock.Any()).Return(diana, nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc, hub
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestConfigService_Load_NeonOverDiana(t *testing.T) {
	svc, _ := loadedConfigService(t,
		models.Document{"iris": map[string]any{"a": 2.0}, "lang": "en-us"},
		models.Document{"iris": map[string]any{"a": 1.0}, "hana": map[string]any{"x": "y"}},
	)

	state := svc.Snapshot()
	assert.Equal(t, map[string]any{"a": 2.0}, state.Config["iris"])
	assert.Equal(t, map[string]any{"x": "y"}, state.Config["hana"])
	assert.Equal(t, "en-us", state.Config["lang"])
	assert.False(t, state.Loading)
	assert.Empty(t, state.LoadError)
	assert.False(t, state.LastRefresh.IsZero())
}

func TestConfigService_Load_FailureKeepsPreviousState(t *testing.T) {
	svc, hub := loadedConfigService(t, models.Document{"lang": "en-us"}, models.Document{})
	before := svc.Snapshot()

	fetchErr := &adapter.FetchError{Document: "neon_config", StatusCode: 502, Message: "bad gateway", Err: adapter.ErrBadGateway}
	hub.EXPECT().FetchNeonConfig(gomock.Any()).Return(nil, fetchErr)

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)

	after := svc.Snapshot()
	assert.Equal(t, before.Config, after.Config)
	assert.Equal(t, before.LastRefresh, after.LastRefresh)
	assert.Contains(t, after.LoadError, "neon_config")
}

func TestConfigService_Load_DianaFailure(t *testing.T) {
	svc, hub := newTestConfigService(t)
	hub.EXPECT().FetchNeonConfig(gomock.Any()).Return(models.Document{"lang": "en-us"}, nil)
	hub.EXPECT().FetchDianaConfig(gomock.Any()).Return(nil, errors.New("boom"))

	require.Error(t, svc.Load(context.Background()))
	assert.Empty(t, svc.Snapshot().Config)
}

func TestConfigService_SnapshotIsCopy(t *testing.T) {
	svc, _ := loadedConfigService(t, models.Document{"units": map[string]any{"system_unit": "metric"}}, nil)

	state := svc.Snapshot()
	state.Config["units"].(map[string]any)["system_unit"] = "imperial"

	text, ok := svc.FieldText(models.SectionUnits, "system_unit")
	require.True(t, ok)
	assert.Equal(t, "metric", text)
}

// ── edits ───────────────────────────────────────────────────────────────────

func TestConfigService_EditField_BeforeLoad(t *testing.T) {
	svc, _ := newTestConfigService(t)
	assert.ErrorIs(t, svc.EditField(models.SectionUnits, "system_unit", "metric"), ErrNotLoaded)
}

func TestConfigService_EditField_TouchesOnlyAddressedSection(t *testing.T) {
	svc, _ := loadedConfigService(t, models.Document{
		"units":    map[string]any{"system_unit": "imperial", "time_format": "half"},
		"location": map[string]any{"timezone": "UTC"},
	}, nil)

	require.NoError(t, svc.EditField(models.SectionUnits, "system_unit", "metric"))

	state := svc.Snapshot()
	assert.Equal(t, map[string]any{"system_unit": "metric", "time_format": "half"}, state.Config["units"])
	assert.Equal(t, map[string]any{"timezone": "UTC"}, state.Config["location"])
}

func TestConfigService_EditField_ArrayRoundTrip(t *testing.T) {
	svc, _ := loadedConfigService(t, nil, models.Document{
		"iris": map[string]any{"languages": []any{"en-us"}},
	})

	require.NoError(t, svc.EditField(models.SectionIRIS, "languages", "x, y"))

	section, ok := svc.Section(models.SectionIRIS)
	require.True(t, ok)
	assert.Equal(t, []any{"x", "y"}, section["languages"])

	text, ok := svc.FieldText(models.SectionIRIS, "languages")
	require.True(t, ok)
	assert.Equal(t, "x, y", text)
}

func TestConfigService_EditField_InvalidJSONStoredRaw(t *testing.T) {
	svc, _ := loadedConfigService(t, models.Document{
		"skills": map[string]any{"extra_dependencies": map[string]any{"global": []any{"requests"}}},
	}, nil)

	assert.NotPanics(t, func() {
		require.NoError(t, svc.EditField(models.SectionSkills, "extra_dependencies", `{"global": [`))
	})

	state := svc.Snapshot()
	assert.Equal(t, `{"global": [`, state.Config["skills"].(map[string]any)["extra_dependencies"])
	assert.Contains(t, state.ParseNotes, "skills.extra_dependencies")

	// a later valid edit clears the note
	require.NoError(t, svc.SetField(models.SectionSkills, "extra_dependencies", map[string]any{}))
	assert.NotContains(t, svc.Snapshot().ParseNotes, "skills.extra_dependencies")
}

func TestConfigService_EditField_UnknownSection(t *testing.T) {
	svc, _ := loadedConfigService(t, models.Document{"lang": "en-us"}, nil)

	assert.ErrorIs(t, svc.EditField("nope", "k", "v"), ErrUnknownSection)
	assert.ErrorIs(t, svc.EditField("lang", "k", "v"), ErrSectionNotObject)
}

func TestConfigService_EditField_General(t *testing.T) {
	svc, _ := loadedConfigService(t, models.Document{
		"lang":    "en-us",
		"logging": map[string]any{"LOG_LEVEL": "INFO"},
		"units":   map[string]any{"system_unit": "imperial"},
	}, nil)

	require.NoError(t, svc.SetField(models.SectionGeneral, models.KeyLogLevel, "DEBUG"))
	require.NoError(t, svc.EditField(models.SectionGeneral, models.KeyLanguage, "de-de"))
	require.NoError(t, svc.EditField(models.SectionGeneral, models.KeyTimeFormat, "full"))
	assert.ErrorIs(t, svc.EditField(models.SectionGeneral, "timezone", "UTC"), ErrUnknownSection)

	state := svc.Snapshot()
	assert.Equal(t, "de-de", state.Config["lang"])
	assert.Equal(t, map[string]any{"LOG_LEVEL": "DEBUG"}, state.Config["logging"])
	assert.Equal(t, map[string]any{"system_unit": "imperial", "time_format": "full"}, state.Config["units"])

	general, ok := svc.Section(models.SectionGeneral)
	require.True(t, ok)
	assert.Equal(t, models.Section{
		"LOG_LEVEL": "DEBUG", "lang": "de-de", "time_format": "full", "system_unit": "imperial",
	}, general)
}

// ── SaveSection ─────────────────────────────────────────────────────────────

func TestConfigService_SaveSection_Neon(t *testing.T) {
	svc, hub := loadedConfigService(t, models.Document{
		"units": map[string]any{"system_unit": "imperial"},
	}, models.Document{"iris": map[string]any{}})
	require.NoError(t, svc.EditField(models.SectionUnits, "system_unit", "metric"))

	hub.EXPECT().
		SaveNeonConfig(gomock.Any(), models.Document{"units": map[string]any{"system_unit": "metric"}}).
		Return(models.Document{"units": map[string]any{"system_unit": "metric"}, "lang": "en-us"}, nil)

	require.NoError(t, svc.SaveSection(context.Background(), models.SectionUnits))

	state := svc.Snapshot()
	assert.Equal(t, "en-us", state.Config["lang"])
	assert.False(t, state.IsSaving(models.SectionUnits))
	assert.Empty(t, state.SaveError(models.SectionUnits))
}

func TestConfigService_SaveSection_Diana(t *testing.T) {
	svc, hub := loadedConfigService(t,
		models.Document{"hana": map[string]any{"node_username": "neon"}},
		models.Document{"iris": map[string]any{"default_lang": "en-us"}},
	)

	hub.EXPECT().
		SaveDianaConfig(gomock.Any(), models.Document{
			"iris": map[string]any{"default_lang": "en-us"},
			"hana": map[string]any{"node_username": "neon"},
		}).
		Return(models.Document{
			"iris": map[string]any{"default_lang": "de-de"},
			"hana": map[string]any{"node_username": "diana-copy"},
		}, nil)

	require.NoError(t, svc.SaveSection(context.Background(), models.SectionIRIS))

	state := svc.Snapshot()
	assert.Equal(t, map[string]any{"default_lang": "de-de"}, state.Config["iris"])
	assert.Equal(t, map[string]any{"node_username": "neon"}, state.Config["hana"], "neon keeps precedence")
}

func TestConfigService_SaveSection_ErrorIsPerSection(t *testing.T) {
	svc, hub := loadedConfigService(t, models.Document{
		"units":    map[string]any{"system_unit": "imperial"},
		"location": map[string]any{"timezone": "UTC"},
	}, nil)

	saveErr := &adapter.SaveError{Document: "neon_config", StatusCode: 500, Message: "oops", Err: adapter.ErrInternalServerError}
	hub.EXPECT().SaveNeonConfig(gomock.Any(), gomock.Any()).Return(nil, saveErr)

	err := svc.SaveSection(context.Background(), models.SectionUnits)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)

	state := svc.Snapshot()
	assert.NotEmpty(t, state.SaveError(models.SectionUnits))
	assert.Empty(t, state.SaveError(models.SectionLocation))
	assert.False(t, state.IsSaving(models.SectionUnits))
	assert.Equal(t, map[string]any{"system_unit": "imperial"}, state.Config["units"])
}

func TestConfigService_SaveSection_Unknown(t *testing.T) {
	svc, _ := loadedConfigService(t, models.Document{"lang": "en-us"}, nil)
	assert.ErrorIs(t, svc.SaveSection(context.Background(), "nope"), ErrUnknownSection)
}

func TestConfigService_SaveSection_AtMostOneInFlight(t *testing.T) {
	svc, hub := loadedConfigService(t, models.Document{"units": map[string]any{}}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	hub.EXPECT().SaveNeonConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, partial models.Document) (models.Document, error) {
			close(started)
			<-release
			return partial, nil
		}).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.SaveSection(context.Background(), models.SectionUnits))
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first save did not start")
	}

	assert.True(t, svc.Snapshot().IsSaving(models.SectionUnits))
	assert.ErrorIs(t, svc.SaveSection(context.Background(), models.SectionUnits), ErrSaveInProgress)

	close(release)
	wg.Wait()
	assert.False(t, svc.Snapshot().IsSaving(models.SectionUnits))
}
