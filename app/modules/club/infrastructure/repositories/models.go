package clubdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Club is a student organization. Memberships and events hang off it and
// never outlive it.
type Club struct {
	bun.BaseModel `bun:"table:clubs,alias:c"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description,notnull" json:"description"`
	Category    string    `bun:"category,notnull" json:"category"`
	Logo        *string   `bun:"logo,nullzero" json:"logo,omitempty"`
	CreatedBy   int64     `bun:"created_by,notnull" json:"created_by"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	// ORM relationships
	Memberships []*Membership `bun:"rel:has-many,join:id=club_id" json:"-"`
}

// Membership is the materialized fact that a user belongs to a club.
// UNIQUE(club_id, user_id) guarantees at most one row per pair.
type Membership struct {
	bun.BaseModel `bun:"table:memberships,alias:m"`

	ID       int64     `bun:"id,pk,autoincrement" json:"id"`
	ClubID   int64     `bun:"club_id,notnull" json:"club_id"`
	UserID   int64     `bun:"user_id,notnull" json:"user_id"`
	Role     string    `bun:"role,notnull,default:'Member'" json:"role"`
	JoinedAt time.Time `bun:"joined_at,notnull,default:current_timestamp" json:"joined_at"`

	// ORM relationships
	Club *Club `bun:"rel:belongs-to,join:club_id=id" json:"-"`
}

// ClubWithCounts is a Club plus its derived aggregates. The counts are
// computed per read; they are never stored.
type ClubWithCounts struct {
	*Club `bun:",extend"`

	MemberCount int64 `bun:"member_count,scanonly" json:"member_count"`
	EventCount  int64 `bun:"event_count,scanonly" json:"event_count"`
}

// MemberRow joins a membership with the member's directory entry for
// roster listings.
type MemberRow struct {
	*Membership `bun:",extend"`

	UserName  string `bun:"user_name,scanonly" json:"user_name"`
	UserEmail string `bun:"user_email,scanonly" json:"user_email"`
}
