package joinrequestdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for join-request persistence.
type Repository interface {
	// Create inserts a pending request and populates its ID.
	Create(ctx context.Context, db bun.IDB, request *JoinRequest) error

	// GetByID retrieves a request by ID.
	GetByID(ctx context.Context, db bun.IDB, requestID int64) (*JoinRequest, error)

	// GetByUserAndClub retrieves the request for a (user, club) pair in any
	// status.
	GetByUserAndClub(ctx context.Context, db bun.IDB, userID, clubID int64) (*JoinRequest, error)

	// ListForUser retrieves a user's requests with club names.
	ListForUser(ctx context.Context, db bun.IDB, userID int64) ([]UserRequestRow, error)

	// ListForClub retrieves a club's requests with requester identities.
	ListForClub(ctx context.Context, db bun.IDB, clubID int64) ([]ClubRequestRow, error)

	// UpdateStatus sets the status of a request.
	UpdateStatus(ctx context.Context, db bun.IDB, requestID int64, status Status) error

	// Delete removes a request row outright.
	Delete(ctx context.Context, db bun.IDB, requestID int64) error

	// DeleteByClub removes every request referencing a club.
	DeleteByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error)
}
