package userrouter

import (
	"github.com/go-chi/chi/v5"

	userhandlers "github.com/campusclubs/clubhub/app/modules/user/infrastructure/handlers"
)

// Register mounts the user directory routes on r.
func Register(r chi.Router, h *userhandlers.UserHandlers) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.GetUsers)
		r.Get("/{userID}", h.GetUser)
	})
}
