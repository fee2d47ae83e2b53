package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/panel"
	"github.com/NeonGeckoCom/neon-hub-config/internal/utils"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"isKind": func(f panel.Field, kind string) bool {
		return string(f.Kind) == kind
	},
}

type views struct {
	t *template.Template
}

func newViews() (*views, error) {
	t, err := template.New("views").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &views{t: t}, nil
}

// render executes name into a buffer first so a template error never leaves
// a half-written page behind.
func (v *views) render(w http.ResponseWriter, name string, status int, data any) error {
	var buf bytes.Buffer
	if err := v.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	utils.SetNoCache(w.Header())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

type loginPage struct {
	Username string
	Error    string
	BaseURL  string
	// Override is the backend typed into the login form, if any.
	Override string
	Version  string
}

type tabLink struct {
	Tab    models.Tab
	Title  string
	Active bool
}

type dashboardPage struct {
	Username string
	BaseURL  string
	Theme    models.Theme
	Version  string
	Tabs     []tabLink
	Flash    *flash

	Config      *configView
	Advanced    *advancedView
	Placeholder *panel.PlaceholderView
}

type configView struct {
	Loading     bool
	LoadError   string
	LastRefresh time.Time
	Sections    []sectionView
}

type sectionView struct {
	Key    models.SectionKey
	Title  string
	Saving bool
	Error  string
	Fields []fieldView
}

type fieldView struct {
	panel.Field
	Revealed bool
	Note     string
}

type targetLink struct {
	Target models.RawTarget
	Title  string
	Active bool
}

type advancedView struct {
	Target  models.RawTarget
	Title   string
	Targets []targetLink
	State   models.RawEditorState
}

func tabLinks(active models.Tab) []tabLink {
	links := make([]tabLink, 0, len(models.Tabs))
	for _, t := range models.Tabs {
		links = append(links, tabLink{Tab: t, Title: t.Title(), Active: t == active})
	}
	return links
}

func targetLinks(active models.RawTarget) []targetLink {
	links := make([]targetLink, 0, len(models.RawTargets))
	for _, t := range models.RawTargets {
		links = append(links, targetLink{Target: t, Title: t.Title(), Active: t == active})
	}
	return links
}

// buildConfigView joins the panel layout with the per-session state.
func buildConfigView(s *webSession) *configView {
	cfg := s.Services.Config
	state := cfg.Snapshot()

	view := &configView{
		Loading:     state.Loading,
		LoadError:   state.LoadError,
		LastRefresh: state.LastRefresh,
	}
	for _, sec := range panel.BuildLayout(cfg.Section) {
		sv := sectionView{
			Key:    sec.Key,
			Title:  sec.Title,
			Saving: state.IsSaving(sec.Key),
			Error:  state.SaveError(sec.Key),
		}
		for _, f := range sec.Fields {
			id := fieldID(sec.Key, f.Key)
			sv.Fields = append(sv.Fields, fieldView{
				Field:    f,
				Revealed: s.isRevealed(id),
				Note:     state.ParseNotes[id],
			})
		}
		view.Sections = append(view.Sections, sv)
	}
	return view
}

func fieldID(section models.SectionKey, key string) string {
	return string(section) + "." + key
}
