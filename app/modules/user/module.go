package user

import (
	"github.com/go-chi/chi/v5"

	userservice "github.com/campusclubs/clubhub/app/modules/user/application"
	userhandlers "github.com/campusclubs/clubhub/app/modules/user/infrastructure/handlers"
	userrouter "github.com/campusclubs/clubhub/app/modules/user/infrastructure/router"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/db/bundb"
)

// Module represents the user directory module.
type Module struct {
	Service  userservice.Service
	Handlers *userhandlers.UserHandlers
}

// NewModule creates and initializes the user directory module.
func NewModule(obs *observability.Observability, dbs *bundb.DBService) *Module {
	service := userservice.NewUserService(dbs.UserDB, obs.Logger, dbs.GetDB())
	handlers := userhandlers.NewUserHandlers(service, obs.Logger)

	return &Module{Service: service, Handlers: handlers}
}

// RegisterRoutes mounts the module's routes on r.
func (m *Module) RegisterRoutes(r chi.Router) {
	userrouter.Register(r, m.Handlers)
}
