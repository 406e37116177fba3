package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/campusclubs/clubhub/app"
	"github.com/campusclubs/clubhub/app/shared/observability"
	"github.com/campusclubs/clubhub/config"
)

func main() {
	// Missing .env is fine; config falls back to the environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	obs := observability.New(cfg.Observability)

	application, err := app.NewApp(ctx, cfg, obs)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		obs.Logger.Error("server error", "error", err)
	}

	if err := application.Close(); err != nil {
		obs.Logger.Error("error closing database connection", "error", err)
	}

	obs.Logger.Info("application shut down gracefully")
}
