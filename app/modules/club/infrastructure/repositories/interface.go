package clubdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for club and membership persistence.
// Every method takes a bun.IDB so it can run inside or outside a
// transaction; a nil db falls back to the repository's own connection.
type Repository interface {
	// Create inserts a club and populates its ID.
	Create(ctx context.Context, db bun.IDB, club *Club) error

	// GetByID retrieves a club with live member/event counts.
	GetByID(ctx context.Context, db bun.IDB, clubID int64) (*ClubWithCounts, error)

	// List retrieves all clubs with live member/event counts.
	List(ctx context.Context, db bun.IDB) ([]ClubWithCounts, error)

	// Update replaces the mutable fields of a club.
	Update(ctx context.Context, db bun.IDB, club *Club) error

	// Delete removes the club row itself.
	Delete(ctx context.Context, db bun.IDB, clubID int64) error

	// Exists reports whether the club exists.
	Exists(ctx context.Context, db bun.IDB, clubID int64) (bool, error)

	// DeleteMembershipsByClub removes every membership of a club.
	DeleteMembershipsByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error)

	// InsertMembershipIfAbsent inserts a membership unless one already
	// exists for the (club_id, user_id) pair. Reports whether a row was
	// inserted.
	InsertMembershipIfAbsent(ctx context.Context, db bun.IDB, membership *Membership) (bool, error)

	// ListMembers returns the club roster joined with user identities.
	ListMembers(ctx context.Context, db bun.IDB, clubID int64) ([]MemberRow, error)
}
