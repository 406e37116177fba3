package joinrequestrouter

import (
	"github.com/go-chi/chi/v5"

	joinrequesthandlers "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/handlers"
)

// Register mounts the join-request routes on r.
func Register(r chi.Router, h *joinrequesthandlers.JoinRequestHandlers) {
	r.Route("/join-requests", func(r chi.Router) {
		r.Post("/", h.CreateRequest)
		r.Get("/", h.ListRequests)
		r.Route("/{requestID}", func(r chi.Router) {
			r.Patch("/", h.TransitionRequest)
			r.Delete("/", h.CancelRequest)
		})
	})
}
