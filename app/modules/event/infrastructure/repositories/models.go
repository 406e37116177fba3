package eventdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Event is a club-scoped happening. Its lifecycle is tied to the owning
// club only for deletion; it is otherwise created and edited on its own.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	ClubID      int64     `bun:"club_id,notnull" json:"club_id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description" json:"description"`
	Date        time.Time `bun:"date,notnull" json:"date"`
	Location    string    `bun:"location" json:"location"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// EventWithClub surfaces the owning club's name on event listings.
type EventWithClub struct {
	*Event `bun:",extend"`

	ClubName string `bun:"club_name,scanonly" json:"club_name"`
}
