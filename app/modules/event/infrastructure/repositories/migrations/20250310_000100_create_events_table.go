package eventmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS events (
				id BIGSERIAL PRIMARY KEY,
				club_id BIGINT NOT NULL REFERENCES clubs(id),
				title VARCHAR(200) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				date TIMESTAMPTZ NOT NULL,
				location VARCHAR(200) NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_events_club_id ON events(club_id);
			CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
		`)
		if err != nil {
			return fmt.Errorf("failed to create events table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS events;`); err != nil {
			return fmt.Errorf("failed to drop events table: %w", err)
		}
		return nil
	})
}
