package clubrouter

import (
	"github.com/go-chi/chi/v5"

	clubhandlers "github.com/campusclubs/clubhub/app/modules/club/infrastructure/handlers"
)

// Register mounts the club routes on r.
func Register(r chi.Router, h *clubhandlers.ClubHandlers) {
	r.Route("/clubs", func(r chi.Router) {
		r.Post("/", h.CreateClub)
		r.Get("/", h.GetClubs)
		r.Route("/{clubID}", func(r chi.Router) {
			r.Get("/", h.GetClub)
			r.Put("/", h.UpdateClub)
			r.Delete("/", h.DeleteClub)
			r.Get("/members", h.GetMembers)
		})
	})
}
