package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/campusclubs/clubhub/app/shared/observability"
)

// RouteRegistrar is implemented by modules that expose HTTP routes.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter builds the HTTP routing tree for the application.
func (a *App) NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(observability.CorrelationID)
	r.Use(observability.RequestLogger(a.Obs.Logger))
	r.Use(middleware.Recoverer)

	if a.Cfg.Observability.MetricsEnabled {
		reg := prometheus.NewRegistry()
		metrics := observability.NewHTTPMetrics(reg)
		r.Use(metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", observability.MetricsHandler(reg))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		registrars := []RouteRegistrar{
			a.ClubModule,
			a.EventModule,
			a.JoinRequestModule,
			a.UserModule,
		}
		for _, m := range registrars {
			m.RegisterRoutes(api)
		}
	})

	return r
}
