package joinrequestservice

import (
	"context"

	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
)

// Service defines the join-request workflow operations.
//
// State machine per request:
//
//	[no request] --create--> pending --approve--> approved (terminal)
//	                   |          \--reject---> rejected (terminal)
//	                   \--cancel--> [deleted]
type Service interface {
	// CreateRequest files a pending request and returns its ID. At most one
	// request may exist per (user, club) pair in any status.
	CreateRequest(ctx context.Context, userID, clubID int64) (int64, error)

	// ListForUser returns a user's requests with club names.
	ListForUser(ctx context.Context, userID int64) ([]joinrequestdb.UserRequestRow, error)

	// ListForClub returns a club's requests with requester identities.
	ListForClub(ctx context.Context, clubID int64) ([]joinrequestdb.ClubRequestRow, error)

	// Transition moves a request to the given status. Approval materializes
	// the membership in the same transaction; re-approval is idempotent.
	Transition(ctx context.Context, requestID int64, status joinrequestdb.Status) error

	// Cancel deletes a request outright, whatever its status. Canceling an
	// approved request does not revoke the membership.
	Cancel(ctx context.Context, requestID int64) error
}
