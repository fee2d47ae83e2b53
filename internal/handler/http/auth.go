package http

import (
	"net/http"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/internal/app"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/utils"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, loginPage{}, http.StatusOK)
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, page loginPage, status int) {
	page.Version = h.buildInfo.BuildVersion()
	if page.BaseURL == "" {
		page.BaseURL = h.origin
	}
	if err := h.views.render(w, "login", status, page); err != nil {
		logger.FromRequest(r).Err(err).Msg("render login page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

// login checks the credentials against the backend and, on success, starts
// a session with its own client services.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		h.renderLogin(w, r, loginPage{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Username: strings.TrimSpace(r.PostForm.Get("username")),
		Password: r.PostForm.Get("password"),
	}
	if err := h.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Msg("login form rejected")
		h.renderLogin(w, r, loginPage{Username: creds.Username, Error: app.MsgLoginRequired}, http.StatusBadRequest)
		return
	}

	// an optional backend override, kept only once the login succeeds
	override := strings.TrimSpace(r.PostForm.Get("base_url"))
	if override != "" {
		if err := h.validator.Validate(ctx, models.APIConfig{BaseURL: override}); err != nil {
			log.Debug().Err(err).Str("base_url", override).Msg("login backend rejected")
			h.renderLogin(w, r, loginPage{Username: creds.Username, Override: override, Error: app.MsgInvalidBaseURL}, http.StatusBadRequest)
			return
		}
	}

	services, err := h.newServices(creds.Username)
	if err != nil {
		log.Err(err).Msg("create session services")
		h.renderLogin(w, r, loginPage{Username: creds.Username, Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}

	baseURL, err := services.Preferences.ApplyBaseURL(ctx, h.origin)
	if err != nil {
		log.Err(err).Msg("resolve backend location")
		h.renderLogin(w, r, loginPage{Username: creds.Username, Override: override, Error: app.UserMessage(err)}, statusFromError(err))
		return
	}
	if override != "" {
		if err = services.Hub.SetBaseURL(override); err != nil {
			h.renderLogin(w, r, loginPage{Username: creds.Username, Override: override, Error: app.MsgInvalidBaseURL}, http.StatusBadRequest)
			return
		}
		baseURL = services.Hub.BaseURL()
	}

	if err = services.Auth.Login(ctx, creds, false); err != nil {
		log.Info().Err(err).Str("username", creds.Username).Str("base_url", baseURL).Msg("login failed")
		h.renderLogin(w, r, loginPage{Username: creds.Username, BaseURL: baseURL, Override: override, Error: app.LoginMessage(err)}, statusFromError(err))
		return
	}
	if override != "" {
		if _, err = services.Preferences.SetBaseURL(ctx, override); err != nil {
			log.Warn().Err(err).Msg("login backend not stored")
		}
	}

	s := h.sessions.Add(creds.Username, services)
	token, err := utils.GenerateSessionToken(h.session.Issuer, s.Username, s.ID, h.session.Duration, h.session.SignKey)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		h.endSession(ctx, s)
		h.renderLogin(w, r, loginPage{Username: creds.Username, Error: app.MsgInternalServerError}, http.StatusInternalServerError)
		return
	}
	h.setSessionCookie(w, token)

	if err = services.Config.Load(ctx); err != nil {
		// the dashboard shows the load error
		log.Warn().Err(err).Msg("initial config load failed")
	}

	log.Info().Str("username", s.Username).Str("base_url", baseURL).Msg("user logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	s := sessionFromRequest(r)
	h.endSession(r.Context(), s)
	h.clearSessionCookie(w)

	sessionID, _ := utils.GetSessionIDFromContext(r.Context())
	logger.FromRequest(r).Info().
		Str("username", s.Username).
		Str("session_id", sessionID).
		Msg("user logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
