package club

import (
	"github.com/go-chi/chi/v5"

	clubservice "github.com/campusclubs/clubhub/app/modules/club/application"
	clubhandlers "github.com/campusclubs/clubhub/app/modules/club/infrastructure/handlers"
	clubrouter "github.com/campusclubs/clubhub/app/modules/club/infrastructure/router"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/db/bundb"
)

// Module represents the club module.
type Module struct {
	Service  clubservice.Service
	Handlers *clubhandlers.ClubHandlers
}

// NewModule creates and initializes the club module.
func NewModule(obs *observability.Observability, dbs *bundb.DBService) *Module {
	service := clubservice.NewClubService(
		dbs.ClubDB,
		dbs.EventDB,
		dbs.JoinRequestDB,
		obs.Logger,
		obs.Tracer,
		dbs.GetDB(),
	)
	handlers := clubhandlers.NewClubHandlers(service, obs.Logger)

	return &Module{Service: service, Handlers: handlers}
}

// RegisterRoutes mounts the module's routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	clubrouter.Register(r, m.Handlers)
}
