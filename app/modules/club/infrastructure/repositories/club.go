package clubdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a club is not found.
var ErrNotFound = errors.New("club not found")

const (
	memberCountExpr = "(SELECT COUNT(*) FROM memberships m WHERE m.club_id = c.id) AS member_count"
	eventCountExpr  = "(SELECT COUNT(*) FROM events e WHERE e.club_id = c.id) AS event_count"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new club repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a club and populates its ID.
func (r *Impl) Create(ctx context.Context, db bun.IDB, club *Club) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(club).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}
	return nil
}

// GetByID retrieves a club by ID with its member and event counts computed
// at read time.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, clubID int64) (*ClubWithCounts, error) {
	db = r.resolveDB(db)
	club := &ClubWithCounts{Club: new(Club)}
	err := db.NewSelect().
		Model(club).
		ColumnExpr("c.*").
		ColumnExpr(memberCountExpr).
		ColumnExpr(eventCountExpr).
		Where("c.id = ?", clubID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get club by ID: %w", err)
	}
	return club, nil
}

// List retrieves all clubs with their member and event counts.
func (r *Impl) List(ctx context.Context, db bun.IDB) ([]ClubWithCounts, error) {
	db = r.resolveDB(db)
	var clubs []ClubWithCounts
	err := db.NewSelect().
		Model(&clubs).
		ColumnExpr("c.*").
		ColumnExpr(memberCountExpr).
		ColumnExpr(eventCountExpr).
		Order("c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

// Update replaces the four mutable fields of a club.
func (r *Impl) Update(ctx context.Context, db bun.IDB, club *Club) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(club).
		Column("name", "description", "category", "logo").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update club: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the club row. Dependent rows are the caller's
// responsibility; the service deletes them in the same transaction.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, clubID int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Club)(nil)).
		Where("id = ?", clubID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a club with the given ID exists.
func (r *Impl) Exists(ctx context.Context, db bun.IDB, clubID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Club)(nil)).
		Where("id = ?", clubID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check club existence: %w", err)
	}
	return exists, nil
}

// DeleteMembershipsByClub removes all memberships for a club and returns
// the number of rows removed.
func (r *Impl) DeleteMembershipsByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error) {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Membership)(nil)).
		Where("club_id = ?", clubID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete club memberships: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

// InsertMembershipIfAbsent inserts a membership row unless one already
// exists for the (club_id, user_id) pair. The unique index makes this safe
// under concurrent approvals.
func (r *Impl) InsertMembershipIfAbsent(ctx context.Context, db bun.IDB, membership *Membership) (bool, error) {
	db = r.resolveDB(db)
	result, err := db.NewInsert().
		Model(membership).
		On("CONFLICT (club_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert membership: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// ListMembers returns the roster for a club, joined with the user
// directory for display names and contact info.
func (r *Impl) ListMembers(ctx context.Context, db bun.IDB, clubID int64) ([]MemberRow, error) {
	db = r.resolveDB(db)
	var members []MemberRow
	err := db.NewSelect().
		Model(&members).
		ColumnExpr("m.*").
		ColumnExpr("u.name AS user_name").
		ColumnExpr("u.email AS user_email").
		Join("JOIN users AS u ON u.id = m.user_id").
		Where("m.club_id = ?", clubID).
		Order("m.joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list club members: %w", err)
	}
	return members, nil
}
