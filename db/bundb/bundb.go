// Package bundb builds the bun.DB connection pool and the repository set
// shared by the application modules.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	eventdb "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
	userdb "github.com/campusclubs/clubhub/app/modules/user/infrastructure/repositories"
	"github.com/campusclubs/clubhub/config"
)

// DBService bundles the database handle with the module repositories.
type DBService struct {
	ClubDB        clubdb.Repository
	EventDB       eventdb.Repository
	JoinRequestDB joinrequestdb.Repository
	UserDB        userdb.Repository

	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close releases the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewDBService initializes a DBService with the provided Postgres
// configuration.
func NewDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		(*clubdb.Club)(nil),
		(*clubdb.Membership)(nil),
		(*eventdb.Event)(nil),
		(*joinrequestdb.JoinRequest)(nil),
		(*userdb.User)(nil),
	)

	return &DBService{
		ClubDB:        clubdb.NewRepository(db),
		EventDB:       eventdb.NewRepository(db),
		JoinRequestDB: joinrequestdb.NewRepository(db),
		UserDB:        userdb.NewRepository(db),
		db:            db,
	}, nil
}
