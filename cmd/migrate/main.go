package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	clubmigrations "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories/migrations"
	eventmigrations "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories/migrations"
	joinrequestmigrations "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories/migrations"
	usermigrations "github.com/campusclubs/clubhub/app/modules/user/infrastructure/repositories/migrations"
	"github.com/campusclubs/clubhub/config"
)

// moduleMigrator pairs a module name with its migrator. Order matters:
// clubs reference users, events and join requests reference clubs.
type moduleMigrator struct {
	name     string
	migrator *migrate.Migrator
}

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	defer db.Close()

	migrators := []moduleMigrator{
		{"user", migrate.NewMigrator(db, usermigrations.Migrations)},
		{"club", migrate.NewMigrator(db, clubmigrations.Migrations)},
		{"event", migrate.NewMigrator(db, eventmigrations.Migrations)},
		{"joinrequest", migrate.NewMigrator(db, joinrequestmigrations.Migrations)},
	}

	cliApp := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			newMultiModuleDBCommand(migrators),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func lookup(migrators []moduleMigrator, name string) (*migrate.Migrator, bool) {
	for _, mm := range migrators {
		if mm.name == name {
			return mm.migrator, true
		}
	}
	return nil, false
}

func newMultiModuleDBCommand(migrators []moduleMigrator) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					for _, mm := range migrators {
						fmt.Printf("Initializing migrations for module: %s\n", mm.name)
						if err := mm.migrator.Init(c.Context); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					for _, mm := range migrators {
						group, err := mm.migrator.Migrate(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", mm.name)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", mm.name, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: func(c *cli.Context) error {
					// Roll back in reverse so dependent tables drop first.
					for i := len(migrators) - 1; i >= 0; i-- {
						mm := migrators[i]
						group, err := mm.migrator.Rollback(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", mm.name)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", mm.name, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "create_go",
				Usage: "create Go migration",
				Action: func(c *cli.Context) error {
					moduleName := c.Args().First()
					migrator, ok := lookup(migrators, moduleName)
					if !ok {
						return fmt.Errorf("invalid module name: %s", moduleName)
					}

					name := strings.Join(c.Args().Tail(), "_")
					mf, err := migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", moduleName, mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					for _, mm := range migrators {
						ms, err := mm.migrator.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations for module: %s\n", mm.name)
						fmt.Printf("  %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				},
			},
		},
	}
}
