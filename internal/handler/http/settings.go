package http

import (
	"net/http"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// setBaseURL stores the session's backend override and reloads the
// configuration from the new backend. An empty value restores the default.
func (h *Handler) setBaseURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	s := sessionFromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid base URL form")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	raw := strings.TrimSpace(r.PostForm.Get("base_url"))
	if err := h.validator.Validate(ctx, models.APIConfig{BaseURL: raw}); err != nil {
		s.setFlash(app.MsgInvalidBaseURL, true)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	url, err := s.Services.Preferences.SetBaseURL(ctx, raw)
	if err != nil {
		log.Err(err).Msg("base URL not stored")
		s.setFlash(app.UserMessage(err), true)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	log.Info().Str("base_url", url).Msg("backend location changed")

	s.forgetRaw()
	if err = s.Services.Config.Load(ctx); err != nil {
		if h.expireOnUnauthorized(w, r, s, err) {
			return
		}
		log.Warn().Err(err).Msg("config reload after backend change failed")
	}

	s.setFlash("Backend: "+url, false)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := sessionFromRequest(r)

	theme := s.Services.Preferences.Theme(ctx).Toggle()
	if err := s.Services.Preferences.SetTheme(ctx, theme); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("theme not stored")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
