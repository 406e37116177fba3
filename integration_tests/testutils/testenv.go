// Package testutils provides the shared database environment for
// integration tests. Tests are skipped unless RUN_INTEGRATION_TESTS is set
// so the unit suite stays runnable without Docker.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	clubmigrations "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories/migrations"
	eventmigrations "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories/migrations"
	joinrequestmigrations "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories/migrations"
	usermigrations "github.com/campusclubs/clubhub/app/modules/user/infrastructure/repositories/migrations"
	"github.com/campusclubs/clubhub/integration_tests/containers"
)

// appTables lists every application table, dependents first, for cleanup.
var appTables = []string{"join_requests", "events", "memberships", "clubs", "users"}

// TestEnvironment bundles the container-backed database shared by a test
// package.
type TestEnvironment struct {
	DB        *bun.DB
	ConnStr   string
	container *postgres.PostgresContainer
}

// RequireDocker skips t unless integration tests are enabled.
func RequireDocker(t *testing.T) {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("set RUN_INTEGRATION_TESTS=1 to run integration tests")
	}
}

// NewTestEnvironment starts a Postgres container and migrates the schema.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	return &TestEnvironment{DB: db, ConnStr: connStr, container: pgContainer}, nil
}

// Reset truncates every application table.
func (e *TestEnvironment) Reset(ctx context.Context) error {
	for _, table := range appTables {
		if _, err := e.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// Close tears down the database and container.
func (e *TestEnvironment) Close(ctx context.Context) {
	if e.DB != nil {
		_ = e.DB.Close()
	}
	if e.container != nil {
		_ = e.container.Terminate(ctx)
	}
}

// runMigrations applies every module's migrations. Order matters because of
// the foreign keys: clubs reference users, events and join requests
// reference clubs.
func runMigrations(ctx context.Context, db *bun.DB) error {
	orderedModules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"user", usermigrations.Migrations},
		{"club", clubmigrations.Migrations},
		{"event", eventmigrations.Migrations},
		{"joinrequest", joinrequestmigrations.Migrations},
	}

	for _, mod := range orderedModules {
		migrator := migrate.NewMigrator(db, mod.migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize migration tables: %w", err)
		}
		group, err := migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", mod.name, err)
		}
		if group.IsZero() {
			log.Printf("No %s migrations to run", mod.name)
		} else {
			log.Printf("Ran %s migrations group #%d", mod.name, group.ID)
		}
	}
	return nil
}
