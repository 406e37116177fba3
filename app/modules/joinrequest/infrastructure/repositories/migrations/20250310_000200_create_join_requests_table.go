package joinrequestmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// One request per (user, club) pair in ANY status. The application
		// pre-checks for a friendly error; this index is the backstop that
		// keeps two concurrent creates from both succeeding.
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS join_requests (
				id BIGSERIAL PRIMARY KEY,
				user_id BIGINT NOT NULL,
				club_id BIGINT NOT NULL REFERENCES clubs(id),
				status VARCHAR(20) NOT NULL DEFAULT 'pending'
					CHECK (status IN ('pending', 'approved', 'rejected')),
				request_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				CONSTRAINT uq_join_requests_user_club UNIQUE (user_id, club_id)
			);
			CREATE INDEX IF NOT EXISTS idx_join_requests_club_id ON join_requests(club_id);
		`)
		if err != nil {
			return fmt.Errorf("failed to create join_requests table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS join_requests;`); err != nil {
			return fmt.Errorf("failed to drop join_requests table: %w", err)
		}
		return nil
	})
}
