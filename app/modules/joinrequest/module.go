package joinrequest

import (
	"github.com/go-chi/chi/v5"

	joinrequestservice "github.com/campusclubs/clubhub/app/modules/joinrequest/application"
	joinrequesthandlers "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/handlers"
	joinrequestrouter "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/router"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/db/bundb"
)

// Module represents the join-request module.
type Module struct {
	Service  joinrequestservice.Service
	Handlers *joinrequesthandlers.JoinRequestHandlers
}

// NewModule creates and initializes the join-request module.
func NewModule(obs *observability.Observability, dbs *bundb.DBService) *Module {
	service := joinrequestservice.NewJoinRequestService(
		dbs.JoinRequestDB,
		dbs.ClubDB,
		obs.Logger,
		obs.Tracer,
		dbs.GetDB(),
	)
	handlers := joinrequesthandlers.NewJoinRequestHandlers(service, obs.Logger)

	return &Module{Service: service, Handlers: handlers}
}

// RegisterRoutes mounts the module's routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	joinrequestrouter.Register(r, m.Handlers)
}
