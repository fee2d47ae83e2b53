package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/NeonGeckoCom/neon-hub-config/internal/adapter"
	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/utils"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

const sessionCookieName = "hub_session"

type sessionCtxKey struct{}

// auth resolves the session cookie to the caller's [webSession].
//
// A missing, expired or forged cookie, or one whose session is gone, sends
// pages to /login and answers JSON endpoints with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Debug().Err(ErrNoSessionCookie).Send()
			h.toLogin(w, r)
			return
		}

		token, err := utils.ValidateSessionToken(cookie.Value, h.session.SignKey, h.session.Issuer)
		if err != nil {
			log.Err(err).Msg("rejected session token")
			h.clearSessionCookie(w)
			h.toLogin(w, r)
			return
		}

		s, ok := h.sessions.Get(token.SessionID)
		if !ok || s.Username != token.Username {
			log.Info().Err(ErrSessionNotFound).Str("username", token.Username).Send()
			h.clearSessionCookie(w)
			h.toLogin(w, r)
			return
		}

		ctx := utils.WithSession(r.Context(), s.ID, s.Username)
		ctx = context.WithValue(ctx, sessionCtxKey{}, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFromRequest(r *http.Request) *webSession {
	s, _ := r.Context().Value(sessionCtxKey{}).(*webSession)
	return s
}

func (h *Handler) toLogin(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		utils.WriteJSON(w, map[string]string{"error": "login required"}, http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.SessionToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt.Time,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// expireOnUnauthorized ends the session when the backend stopped accepting
// its credentials. It reports whether the request was answered.
func (h *Handler) expireOnUnauthorized(w http.ResponseWriter, r *http.Request, s *webSession, err error) bool {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return false
	}
	logger.FromRequest(r).Info().Str("username", s.Username).Msg("backend rejected session credentials")
	h.endSession(r.Context(), s)
	h.clearSessionCookie(w)
	h.toLogin(w, r)
	return true
}

func (h *Handler) endSession(ctx context.Context, s *webSession) {
	if _, ok := h.sessions.Remove(s.ID); !ok {
		return
	}
	if err := s.Services.Auth.Logout(ctx); err != nil {
		h.logger.Err(err).Str("username", s.Username).Msg("logout")
	}
}
