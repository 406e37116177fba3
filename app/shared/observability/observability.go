// Package observability wires the logger, tracer, and HTTP metrics used
// across the service layer.
package observability

import (
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/campusclubs/clubhub/config"
)

// Observability bundles the logger and tracer handed to modules.
type Observability struct {
	Logger *slog.Logger
	Tracer trace.Tracer
}

// New builds the observability bundle from config. The tracer resolves
// through the global otel provider, so it is a no-op unless the host
// process installs an SDK.
func New(cfg config.ObservabilityConfig) *Observability {
	return &Observability{
		Logger: NewLogger(cfg),
		Tracer: otel.Tracer("clubhub"),
	}
}

// NewLogger builds a slog logger: JSON in deployed environments, text for
// local development.
func NewLogger(cfg config.ObservabilityConfig) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(slog.String("service", "clubhub"))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
