package eventdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for event persistence.
type Repository interface {
	// Create inserts an event and populates its ID.
	Create(ctx context.Context, db bun.IDB, event *Event) error

	// GetByID retrieves an event with its club name.
	GetByID(ctx context.Context, db bun.IDB, eventID int64) (*EventWithClub, error)

	// List retrieves all events with their club names.
	List(ctx context.Context, db bun.IDB) ([]EventWithClub, error)

	// ListForClub retrieves the events of one club.
	ListForClub(ctx context.Context, db bun.IDB, clubID int64) ([]Event, error)

	// Update replaces the mutable fields of an event.
	Update(ctx context.Context, db bun.IDB, event *Event) error

	// Delete removes an event.
	Delete(ctx context.Context, db bun.IDB, eventID int64) error

	// DeleteByClub removes every event of a club.
	DeleteByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error)
}
