// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stub

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-notes-api-tests/internal/app"
)

// BasePath is the prefix all API routes are mounted under.
const BasePath = "/notes/api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route(BasePath, func(r chi.Router) {
		r.Get("/health-check", h.healthCheck)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/users/register", h.register)
			r.Post("/users/login", h.login)
			r.Post("/users/forgot-password", h.forgotPassword)
			r.Post("/users/verify-reset-password-token", h.verifyResetPasswordToken)
			r.Post("/users/reset-password", h.resetPassword)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/profile", h.profile)
			r.Patch("/users/profile", h.updateProfile)
			r.Post("/users/change-password", h.changePassword)
			r.Delete("/users/logout", h.logout)
			r.Delete("/users/delete-account", h.deleteAccount)

			r.Post("/notes", h.createNote)
			r.Get("/notes", h.notes)
			r.Get("/notes/{id}", h.note)
			r.Put("/notes/{id}", h.updateNote)
			r.Patch("/notes/{id}", h.setNoteCompleted)
			r.Delete("/notes/{id}", h.deleteNote)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, app.MsgHealthy, nil)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusNotFound, app.MsgRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
}
