package http

import (
	"net/http"

	"github.com/NeonGeckoCom/neon-hub-config/internal/utils"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{
		Status:   "ok",
		Version:  h.buildInfo.BuildVersion(),
		Sessions: h.sessions.Len(),
	}, http.StatusOK)
}

type stateResponse struct {
	Username  string             `json:"username"`
	BaseURL   string             `json:"base_url"`
	ActiveTab models.Tab         `json:"active_tab"`
	State     models.ConfigState `json:"state"`
}

// state returns the session's config store as JSON.
func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	s := sessionFromRequest(r)
	username, _ := utils.GetUsernameFromContext(r.Context())

	utils.SetNoCache(w.Header())
	utils.WriteJSON(w, stateResponse{
		Username:  username,
		BaseURL:   s.Services.Hub.BaseURL(),
		ActiveTab: s.Services.Preferences.ActiveTab(r.Context()),
		State:     s.Services.Config.Snapshot(),
	}, http.StatusOK)
}
