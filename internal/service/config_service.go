package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

type configService struct {
	hub    adapter.HubAdapter
	logger *logger.Logger
	now    func() time.Time

	mu          sync.Mutex
	merged      models.MergedConfig
	neonKeys    map[string]bool
	loaded      bool
	loading     bool
	loadErr     string
	saving      map[models.SectionKey]bool
	saveErrs    map[models.SectionKey]string
	parseNotes  map[string]string
	lastRefresh time.Time
}

// NewConfigService returns an empty config store reading and writing through
// hub. Call Load before editing.
func NewConfigService(hub adapter.HubAdapter, logger *logger.Logger) ConfigService {
	return &configService{
		hub:        hub,
		logger:     logger,
		now:        time.Now,
		merged:     models.MergedConfig{},
		neonKeys:   map[string]bool{},
		saving:     map[models.SectionKey]bool{},
		saveErrs:   map[models.SectionKey]string{},
		parseNotes: map[string]string{},
	}
}

// mergeDocuments shallow-merges neon over diana into a fresh config.
func mergeDocuments(neon models.NeonDocument, diana models.DianaDocument) models.MergedConfig {
	merged := make(models.MergedConfig, len(neon)+len(diana))
	for k, v := range diana {
		merged[k] = models.CloneValue(v)
	}
	for k, v := range neon {
		merged[k] = models.CloneValue(v)
	}
	return merged
}

func (c *configService) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	neon, err := c.hub.FetchNeonConfig(ctx)
	var diana models.DianaDocument
	if err == nil {
		diana, err = c.hub.FetchDianaConfig(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.loadErr = err.Error()
		c.logger.Err(err).Msg("failed to load configuration")
		return fmt.Errorf("load configuration: %w", err)
	}

	c.merged = mergeDocuments(neon, diana)
	c.neonKeys = make(map[string]bool, len(neon))
	for k := range neon {
		c.neonKeys[k] = true
	}
	c.loaded = true
	c.loadErr = ""
	c.parseNotes = map[string]string{}
	c.lastRefresh = c.now()

	c.logger.Debug().Int("neon_keys", len(neon)).Int("diana_keys", len(diana)).Msg("configuration loaded")
	return nil
}

func (c *configService) Snapshot() models.ConfigState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := models.ConfigState{
		Config:      c.merged.Clone(),
		Loading:     c.loading,
		LoadError:   c.loadErr,
		Saving:      make(map[models.SectionKey]bool, len(c.saving)),
		SaveErrors:  make(map[models.SectionKey]string, len(c.saveErrs)),
		ParseNotes:  make(map[string]string, len(c.parseNotes)),
		LastRefresh: c.lastRefresh,
	}
	for k, v := range c.saving {
		state.Saving[k] = v
	}
	for k, v := range c.saveErrs {
		state.SaveErrors[k] = v
	}
	for k, v := range c.parseNotes {
		state.ParseNotes[k] = v
	}
	return state
}

func (c *configService) Section(key models.SectionKey) (models.Section, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key == models.SectionGeneral {
		if !c.loaded {
			return nil, false
		}
		return GeneralSection(c.merged), true
	}

	section, ok := c.merged.Section(key)
	if !ok {
		return nil, false
	}
	return models.CloneValue(section).(models.Section), true
}

// currentLocked returns the current value of a field and whether the field
// may be written at all.
func (c *configService) currentLocked(section models.SectionKey, key string) (any, error) {
	if !c.loaded {
		return nil, ErrNotLoaded
	}

	if section == models.SectionGeneral {
		f, ok := lookupGeneralField(key)
		if !ok {
			return nil, fmt.Errorf("%w: general.%s", ErrUnknownSection, key)
		}
		v, _ := generalValue(c.merged, f)
		return v, nil
	}

	raw, exists := c.merged[string(section)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	sec, ok := c.merged.Section(section)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrSectionNotObject, section, raw)
	}
	return sec[key], nil
}

// setLocked replaces the addressed section with a shallow copy carrying the
// new value, leaving every other section untouched.
func (c *configService) setLocked(section models.SectionKey, key string, value any) {
	home := section
	if section == models.SectionGeneral {
		f, _ := lookupGeneralField(key)
		if f.Home == "" {
			c.merged[key] = value
			return
		}
		home = f.Home
	}

	prev, _ := c.merged.Section(home)
	next := make(map[string]any, len(prev)+1)
	for k, v := range prev {
		next[k] = v
	}
	next[key] = value
	c.merged[string(home)] = next
}

func (c *configService) EditField(section models.SectionKey, key, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.currentLocked(section, key)
	if err != nil {
		return err
	}

	value, note := decodeField(current, raw)
	noteKey := string(section) + "." + key
	if note != "" {
		c.parseNotes[noteKey] = note
		c.logger.Debug().Str("field", noteKey).Str("reason", note).Msg("invalid JSON stored as text")
	} else {
		delete(c.parseNotes, noteKey)
	}

	c.setLocked(section, key, value)
	return nil
}

func (c *configService) SetField(section models.SectionKey, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.currentLocked(section, key); err != nil {
		return err
	}
	delete(c.parseNotes, string(section)+"."+key)
	c.setLocked(section, key, models.CloneValue(value))
	return nil
}

func (c *configService) FieldText(section models.SectionKey, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.currentLocked(section, key)
	if err != nil || current == nil {
		return "", false
	}
	return FormatValue(current), true
}

func (c *configService) SaveSection(ctx context.Context, section models.SectionKey) error {
	c.mu.Lock()
	if c.saving[section] {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSaveInProgress, section)
	}
	save, err := BuildSectionSave(section, c.merged)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.saving[section] = true
	delete(c.saveErrs, section)
	c.mu.Unlock()

	var resp models.Document
	switch save.Target {
	case models.TargetDiana:
		resp, err = c.hub.SaveDianaConfig(ctx, save.Partial)
	default:
		resp, err = c.hub.SaveNeonConfig(ctx, save.Partial)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.saving, section)

	if err != nil {
		c.saveErrs[section] = err.Error()
		c.logger.Err(err).Str("section", section.String()).Msg("failed to save section")
		return fmt.Errorf("save %s: %w", section, err)
	}

	c.applySaveResponseLocked(save.Target, resp)
	c.logger.Info().Str("section", section.String()).Str("target", string(save.Target)).Msg("section saved")
	return nil
}

// applySaveResponseLocked folds the document returned by a save into the
// merged view. Neon keys keep precedence over a Diana response.
func (c *configService) applySaveResponseLocked(target models.ConfigTarget, resp models.Document) {
	for k, v := range resp {
		if target == models.TargetDiana && c.neonKeys[k] {
			continue
		}
		c.merged[k] = models.CloneValue(v)
		if target == models.TargetNeon {
			c.neonKeys[k] = true
		}
	}
}
