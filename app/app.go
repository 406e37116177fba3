package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/campusclubs/clubhub/app/modules/club"
	"github.com/campusclubs/clubhub/app/modules/event"
	"github.com/campusclubs/clubhub/app/modules/joinrequest"
	"github.com/campusclubs/clubhub/app/modules/user"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/config"
	"github.com/campusclubs/clubhub/db/bundb"
)

// App wires configuration, the database service, and the application modules
// behind a single HTTP server.
type App struct {
	Cfg *config.Config
	Obs *observability.Observability

	ClubModule        *club.Module
	EventModule       *event.Module
	JoinRequestModule *joinrequest.Module
	UserModule        *user.Module

	db         *bundb.DBService
	httpServer *http.Server
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*App, error) {
	dbService, err := bundb.NewDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	a := &App{
		Cfg:               cfg,
		Obs:               obs,
		ClubModule:        club.NewModule(obs, dbService),
		EventModule:       event.NewModule(obs, dbService),
		JoinRequestModule: joinrequest.NewModule(obs, dbService),
		UserModule:        user.NewModule(obs, dbService),
		db:                dbService,
	}

	a.httpServer = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           a.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return a, nil
}

// DB returns the database service.
func (a *App) DB() *bundb.DBService {
	return a.db
}

// Run serves HTTP until ctx is canceled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	a.Obs.Logger.InfoContext(ctx, "http server listening", "addr", a.Cfg.HTTP.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Close releases the database connection pool.
func (a *App) Close() error {
	return a.db.Close()
}
