package http

import (
	"net/http"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/panel"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) newDashboardPage(r *http.Request, s *webSession, active models.Tab) dashboardPage {
	return dashboardPage{
		Username: s.Username,
		BaseURL:  s.Services.Hub.BaseURL(),
		Theme:    s.Services.Preferences.Theme(r.Context()),
		Version:  h.buildInfo.BuildVersion(),
		Tabs:     tabLinks(active),
		Flash:    s.popFlash(),
	}
}

func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, page dashboardPage, status int) {
	if err := h.views.render(w, "page", status, page); err != nil {
		logger.FromRequest(r).Err(err).Msg("render dashboard")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

// index opens the tab the operator used last.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	s := sessionFromRequest(r)
	tab := s.Services.Preferences.ActiveTab(r.Context())
	http.Redirect(w, r, tabPath(tab), http.StatusSeeOther)
}

func tabPath(tab models.Tab) string {
	if tab == models.TabAdvanced {
		return "/advanced/" + string(models.RawTargets[0])
	}
	return "/tabs/" + string(tab)
}

func (h *Handler) tab(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := sessionFromRequest(r)

	tab := models.Tab(chi.URLParam(r, "tab"))
	if err := h.validator.Validate(ctx, tab); err != nil {
		http.NotFound(w, r)
		return
	}
	if tab == models.TabAdvanced {
		http.Redirect(w, r, tabPath(tab), http.StatusSeeOther)
		return
	}
	h.rememberTab(r, s, tab)

	if tab == models.TabConfig {
		if h.ensureConfigLoaded(w, r, s) {
			return
		}
	}

	page := h.newDashboardPage(r, s, tab)
	if tab == models.TabConfig {
		page.Config = buildConfigView(s)
	} else if p, ok := panel.Placeholder(tab); ok {
		page.Placeholder = &p
	}
	h.renderDashboard(w, r, page, http.StatusOK)
}

func (h *Handler) rememberTab(r *http.Request, s *webSession, tab models.Tab) {
	if err := s.Services.Preferences.SetActiveTab(r.Context(), tab); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("tab", string(tab)).Msg("active tab not stored")
	}
}

// ensureConfigLoaded loads the config the first time the tab is shown. It
// reports whether the request was answered.
func (h *Handler) ensureConfigLoaded(w http.ResponseWriter, r *http.Request, s *webSession) bool {
	state := s.Services.Config.Snapshot()
	if !state.LastRefresh.IsZero() || state.LoadError != "" || state.Loading {
		return false
	}
	err := s.Services.Config.Load(r.Context())
	return err != nil && h.expireOnUnauthorized(w, r, s, err)
}

func (h *Handler) refreshConfig(w http.ResponseWriter, r *http.Request) {
	s := sessionFromRequest(r)

	if err := s.Services.Config.Load(r.Context()); err != nil {
		if h.expireOnUnauthorized(w, r, s, err) {
			return
		}
		logger.FromRequest(r).Warn().Err(err).Msg("config refresh failed")
	}
	http.Redirect(w, r, "/tabs/config", http.StatusSeeOther)
}

// applyForm stores every submitted field of section that differs from the
// current value.
func applyForm(s *webSession, r *http.Request, section models.SectionKey) (bool, error) {
	if err := r.ParseForm(); err != nil {
		return false, err
	}

	cfg := s.Services.Config
	data, ok := cfg.Section(section)
	if !ok {
		return false, nil
	}
	view := panel.BuildSection(section, "", data)

	for _, f := range view.Fields {
		values, sent := r.PostForm["f."+f.Key]
		if !sent || len(values) == 0 {
			continue
		}
		raw := strings.ReplaceAll(values[0], "\r\n", "\n")
		if raw == f.Value {
			continue
		}
		if err := cfg.EditField(section, f.Key, raw); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (h *Handler) sectionFromRequest(w http.ResponseWriter, r *http.Request) (models.SectionKey, bool) {
	section := models.SectionKey(chi.URLParam(r, "section"))
	if err := h.validator.Validate(r.Context(), section); err != nil {
		http.NotFound(w, r)
		return "", false
	}
	return section, true
}

// saveSection applies the form of one section and saves it.
func (h *Handler) saveSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	s := sessionFromRequest(r)

	section, ok := h.sectionFromRequest(w, r)
	if !ok {
		return
	}
	back := "/tabs/config#" + string(section)
	title := panel.Title(section)

	found, err := applyForm(s, r, section)
	switch {
	case err != nil:
		log.Err(err).Str("section", string(section)).Msg("apply section form")
		s.setFlash(title+": "+app.UserMessage(err), true)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	case !found:
		http.NotFound(w, r)
		return
	}

	if err = s.Services.Config.SaveSection(ctx, section); err != nil {
		if h.expireOnUnauthorized(w, r, s, err) {
			return
		}
		log.Warn().Err(err).Str("section", string(section)).Msg("section save failed")
		s.setFlash(title+": "+app.UserMessage(err), true)
	} else {
		s.setFlash("Saved "+title, false)
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// toggleReveal keeps the submitted edits and flips a secret's visibility.
func (h *Handler) toggleReveal(w http.ResponseWriter, r *http.Request) {
	s := sessionFromRequest(r)

	section, ok := h.sectionFromRequest(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "field")
	if !panel.IsSecret(section, key) {
		http.NotFound(w, r)
		return
	}

	if _, err := applyForm(s, r, section); err != nil {
		s.setFlash(panel.Title(section)+": "+app.UserMessage(err), true)
	}
	s.toggleReveal(fieldID(section, key))
	http.Redirect(w, r, "/tabs/config#"+string(section), http.StatusSeeOther)
}
