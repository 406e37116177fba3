package eventservice

import (
	"context"
	"time"

	eventdb "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories"
)

// CreateEventInput carries the fields required to create an event.
type CreateEventInput struct {
	ClubID      int64
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// UpdateEventInput carries the full replacement set for an event's mutable
// fields.
type UpdateEventInput struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// Service defines the event operations.
type Service interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (int64, error)
	GetEvent(ctx context.Context, eventID int64) (*eventdb.EventWithClub, error)
	ListEvents(ctx context.Context) ([]eventdb.EventWithClub, error)
	ListForClub(ctx context.Context, clubID int64) ([]eventdb.Event, error)
	UpdateEvent(ctx context.Context, input UpdateEventInput) error
	DeleteEvent(ctx context.Context, eventID int64) error
}
