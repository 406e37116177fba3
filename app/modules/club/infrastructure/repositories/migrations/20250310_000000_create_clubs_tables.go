package clubmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS clubs (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(100) NOT NULL,
					description TEXT NOT NULL,
					category VARCHAR(50) NOT NULL,
					logo TEXT,
					created_by BIGINT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_clubs_category ON clubs(category);
			`); err != nil {
				return fmt.Errorf("failed to create clubs table: %w", err)
			}

			// user_id is a logical link to the users directory (no constraint)
			// so the club and user modules stay order-independent.
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS memberships (
					id BIGSERIAL PRIMARY KEY,
					club_id BIGINT NOT NULL REFERENCES clubs(id),
					user_id BIGINT NOT NULL,
					role VARCHAR(50) NOT NULL DEFAULT 'Member',
					joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT uq_memberships_club_user UNIQUE (club_id, user_id)
				);
				CREATE INDEX IF NOT EXISTS idx_memberships_user_id ON memberships(user_id);
			`); err != nil {
				return fmt.Errorf("failed to create memberships table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS memberships;`); err != nil {
				return fmt.Errorf("failed to drop memberships table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS clubs CASCADE;`); err != nil {
				return fmt.Errorf("failed to drop clubs table: %w", err)
			}
			return nil
		})
	})
}
