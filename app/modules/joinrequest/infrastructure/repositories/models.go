package joinrequestdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Status is the lifecycle state of a join request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is one of the recognized statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// JoinRequest records a user's intent to join a club. It is a historical
// record: approval and rejection update it in place; only an explicit
// cancellation deletes it. UNIQUE(user_id, club_id) allows one request per
// pair in any status.
type JoinRequest struct {
	bun.BaseModel `bun:"table:join_requests,alias:jr"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID      int64     `bun:"user_id,notnull" json:"user_id"`
	ClubID      int64     `bun:"club_id,notnull" json:"club_id"`
	Status      Status    `bun:"status,notnull,default:'pending'" json:"status"`
	RequestDate time.Time `bun:"request_date,notnull,default:current_timestamp" json:"request_date"`
}

// UserRequestRow is the student-facing projection: the user's requests
// with the club name surfaced.
type UserRequestRow struct {
	*JoinRequest `bun:",extend"`

	ClubName string `bun:"club_name,scanonly" json:"club_name"`
}

// ClubRequestRow is the admin-facing projection: a club's requests with
// the requesting user's identity surfaced.
type ClubRequestRow struct {
	*JoinRequest `bun:",extend"`

	UserName  string `bun:"user_name,scanonly" json:"user_name"`
	UserEmail string `bun:"user_email,scanonly" json:"user_email"`
}
