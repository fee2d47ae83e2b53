package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

type rawConfigService struct {
	hub    adapter.HubAdapter
	logger *logger.Logger
	now    func() time.Time

	mu      sync.Mutex
	editors map[models.RawTarget]*rawEditor
}

type rawEditor struct {
	state    models.RawEditorState
	original string
}

// NewRawConfigService returns the raw YAML editors for every
// [models.RawTargets] entry.
func NewRawConfigService(hub adapter.HubAdapter, logger *logger.Logger) RawConfigService {
	editors := make(map[models.RawTarget]*rawEditor, len(models.RawTargets))
	for _, t := range models.RawTargets {
		editors[t] = &rawEditor{state: models.RawEditorState{Target: t, Valid: true}}
	}

	return &rawConfigService{hub: hub, logger: logger, now: time.Now, editors: editors}
}

// DumpYAML renders doc as block YAML with sorted keys and two-space indent.
func DumpYAML(doc models.Document) (string, error) {
	if len(doc) == 0 {
		return "{}\n", nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(map[string]any(doc)); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return buf.String(), nil
}

// ParseYAML parses text into a JSON-compatible document. The root must be a
// mapping.
func ParseYAML(text string) (models.Document, error) {
	var root any
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, err
	}

	root = jsonCompatible(root)
	doc, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}
	return models.Document(doc), nil
}

// jsonCompatible rewrites maps with non-string keys, which YAML allows and
// JSON does not.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = jsonCompatible(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = jsonCompatible(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = jsonCompatible(item)
		}
		return val
	default:
		return v
	}
}

func (r *rawConfigService) editor(target models.RawTarget) (*rawEditor, error) {
	e, ok := r.editors[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	return e, nil
}

func (r *rawConfigService) Load(ctx context.Context, target models.RawTarget) error {
	r.mu.Lock()
	e, err := r.editor(target)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	e.state.Loading = true
	e.state.LoadError = ""
	r.mu.Unlock()

	doc, err := r.hub.FetchRaw(ctx, target)
	var text string
	if err == nil {
		text, err = DumpYAML(doc)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e.state.Loading = false

	if err != nil {
		e.state.LoadError = err.Error()
		r.logger.Err(err).Str("target", string(target)).Msg("failed to load raw config")
		return fmt.Errorf("load %s: %w", target, err)
	}

	r.replaceLocked(e, text)
	return nil
}

// replaceLocked resets the buffer to text fresh from the backend.
func (r *rawConfigService) replaceLocked(e *rawEditor, text string) {
	e.original = text
	e.state.Text = text
	e.state.Valid = true
	e.state.ParseError = ""
	e.state.Dirty = false
	e.state.SaveError = ""
	e.state.LastRefresh = r.now()
}

func (r *rawConfigService) SetText(target models.RawTarget, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.editor(target)
	if err != nil {
		return err
	}

	e.state.Text = text
	e.state.Dirty = text != e.original
	if _, perr := ParseYAML(text); perr != nil {
		e.state.Valid = false
		e.state.ParseError = perr.Error()
		return &ParseError{Target: string(target), Err: perr}
	}

	e.state.Valid = true
	e.state.ParseError = ""
	e.state.SaveError = ""
	return nil
}

func (r *rawConfigService) State(target models.RawTarget) models.RawEditorState {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.editor(target)
	if err != nil {
		return models.RawEditorState{Target: target}
	}
	return e.state
}

func (r *rawConfigService) Save(ctx context.Context, target models.RawTarget) error {
	r.mu.Lock()
	e, err := r.editor(target)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if e.state.Saving {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSaveInProgress, target)
	}

	doc, perr := ParseYAML(e.state.Text)
	if perr != nil || !e.state.Valid {
		if perr == nil {
			perr = fmt.Errorf("%s", e.state.ParseError)
		}
		e.state.SaveError = "Cannot save invalid YAML"
		r.mu.Unlock()
		return &ParseError{Target: string(target), Err: perr}
	}
	e.state.Saving = true
	e.state.SaveError = ""
	r.mu.Unlock()

	resp, err := r.hub.SaveRaw(ctx, target, doc)
	var text string
	if err == nil {
		text, err = DumpYAML(resp)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e.state.Saving = false

	if err != nil {
		e.state.SaveError = err.Error()
		r.logger.Err(err).Str("target", string(target)).Msg("failed to save raw config")
		return fmt.Errorf("save %s: %w", target, err)
	}

	r.replaceLocked(e, text)
	r.logger.Info().Str("target", string(target)).Int("bytes", len(strings.TrimSpace(text))).Msg("raw config saved")
	return nil
}
