package http

import (
	"net/http"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) targetFromRequest(w http.ResponseWriter, r *http.Request) (models.RawTarget, bool) {
	target := models.RawTarget(chi.URLParam(r, "target"))
	if err := h.validator.Validate(r.Context(), target); err != nil {
		http.NotFound(w, r)
		return "", false
	}
	return target, true
}

// loadRaw fetches target into the session's editor. It reports whether the
// request was answered.
func (h *Handler) loadRaw(w http.ResponseWriter, r *http.Request, s *webSession, target models.RawTarget) bool {
	if err := s.Services.Raw.Load(r.Context(), target); err != nil {
		if h.expireOnUnauthorized(w, r, s, err) {
			return true
		}
		logger.FromRequest(r).Warn().Err(err).Str("target", string(target)).Msg("raw config load failed")
		return false
	}
	s.markRawLoaded(target)
	return false
}

func (h *Handler) renderAdvanced(w http.ResponseWriter, r *http.Request, s *webSession, target models.RawTarget, status int) {
	page := h.newDashboardPage(r, s, models.TabAdvanced)
	page.Advanced = &advancedView{
		Target:  target,
		Title:   target.Title(),
		Targets: targetLinks(target),
		State:   s.Services.Raw.State(target),
	}
	h.renderDashboard(w, r, page, status)
}

func (h *Handler) advancedForm(w http.ResponseWriter, r *http.Request) {
	s := sessionFromRequest(r)

	target, ok := h.targetFromRequest(w, r)
	if !ok {
		return
	}
	h.rememberTab(r, s, models.TabAdvanced)

	if s.needsRawLoad(target) && h.loadRaw(w, r, s, target) {
		return
	}
	h.renderAdvanced(w, r, s, target, http.StatusOK)
}

// advancedSubmit saves or reloads the YAML editor of one target. An invalid
// buffer is kept and shown again with the parse error.
func (h *Handler) advancedSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	s := sessionFromRequest(r)

	target, ok := h.targetFromRequest(w, r)
	if !ok {
		return
	}
	back := "/advanced/" + string(target)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid YAML form")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("action") == "reload" {
		if h.loadRaw(w, r, s, target) {
			return
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	text := strings.ReplaceAll(r.PostForm.Get("yaml"), "\r\n", "\n")
	// an invalid buffer is kept; the state carries the parse error
	_ = s.Services.Raw.SetText(target, text)

	if !s.Services.Raw.State(target).CanSave() {
		s.setFlash(app.MsgCannotSaveInvalidYAML, true)
		h.renderAdvanced(w, r, s, target, http.StatusUnprocessableEntity)
		return
	}

	if err := s.Services.Raw.Save(ctx, target); err != nil {
		if h.expireOnUnauthorized(w, r, s, err) {
			return
		}
		log.Warn().Err(err).Str("target", string(target)).Msg("raw config save failed")
		s.setFlash(target.Title()+": "+app.UserMessage(err), true)
		h.renderAdvanced(w, r, s, target, statusFromError(err))
		return
	}

	s.setFlash("Saved "+target.Title(), false)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
