package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.index)
		r.Post("/logout", h.logout)
		r.Get("/tabs/{tab}", h.tab)

		r.Post("/config/refresh", h.refreshConfig)
		r.Post("/config/sections/{section}", h.saveSection)
		r.Post("/config/sections/{section}/reveal/{field}", h.toggleReveal)

		r.Get("/advanced/{target}", h.advancedForm)
		r.Post("/advanced/{target}", h.advancedSubmit)

		r.Post("/settings/base-url", h.setBaseURL)
		r.Post("/settings/theme", h.toggleTheme)

		r.Get("/api/state", h.state)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
