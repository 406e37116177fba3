package eventrouter

import (
	"github.com/go-chi/chi/v5"

	eventhandlers "github.com/campusclubs/clubhub/app/modules/event/infrastructure/handlers"
)

// Register mounts the event routes on r.
func Register(r chi.Router, h *eventhandlers.EventHandlers) {
	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.GetEvents)
		r.Route("/{eventID}", func(r chi.Router) {
			r.Get("/", h.GetEvent)
			r.Put("/", h.UpdateEvent)
			r.Delete("/", h.DeleteEvent)
		})
	})
}
