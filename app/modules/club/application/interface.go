package clubservice

import (
	"context"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
)

// CreateClubInput carries the fields required to create a club.
type CreateClubInput struct {
	Name        string
	Description string
	Category    string
	CreatedBy   int64
}

// UpdateClubInput carries the full replacement set for a club's mutable
// fields. Partial updates are not supported; callers supply every field.
type UpdateClubInput struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Logo        *string
}

// Service defines the club manager operations.
type Service interface {
	// CreateClub creates a club and returns its ID. The creator is NOT
	// made a member; membership flows through the join-request workflow.
	CreateClub(ctx context.Context, input CreateClubInput) (int64, error)

	// GetClub returns a club with live member/event counts.
	GetClub(ctx context.Context, clubID int64) (*clubdb.ClubWithCounts, error)

	// ListClubs returns all clubs with live member/event counts.
	ListClubs(ctx context.Context) ([]clubdb.ClubWithCounts, error)

	// UpdateClub replaces the club's mutable fields.
	UpdateClub(ctx context.Context, input UpdateClubInput) error

	// DeleteClub removes the club and every dependent membership, event,
	// and join request in one transaction.
	DeleteClub(ctx context.Context, clubID int64) error

	// ListMembers returns the club roster with user identities.
	ListMembers(ctx context.Context, clubID int64) ([]clubdb.MemberRow, error)
}
