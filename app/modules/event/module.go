package event

import (
	"github.com/go-chi/chi/v5"

	eventservice "github.com/campusclubs/clubhub/app/modules/event/application"
	eventhandlers "github.com/campusclubs/clubhub/app/modules/event/infrastructure/handlers"
	eventrouter "github.com/campusclubs/clubhub/app/modules/event/infrastructure/router"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/db/bundb"
)

// Module represents the event module.
type Module struct {
	Service  eventservice.Service
	Handlers *eventhandlers.EventHandlers
}

// NewModule creates and initializes the event module.
func NewModule(obs *observability.Observability, dbs *bundb.DBService) *Module {
	service := eventservice.NewEventService(dbs.EventDB, dbs.ClubDB, obs.Logger, dbs.GetDB())
	handlers := eventhandlers.NewEventHandlers(service, obs.Logger)

	return &Module{Service: service, Handlers: handlers}
}

// RegisterRoutes mounts the module's routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	eventrouter.Register(r, m.Handlers)
}
