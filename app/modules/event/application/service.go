package eventservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	eventdb "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/observability"
)

// EventService implements the Service interface.
type EventService struct {
	repo   eventdb.Repository
	clubs  clubdb.Repository
	logger *slog.Logger
	db     *bun.DB
}

// NewEventService creates a new EventService.
func NewEventService(repo eventdb.Repository, clubs clubdb.Repository, logger *slog.Logger, db *bun.DB) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{repo: repo, clubs: clubs, logger: logger, db: db}
}

// CreateEvent creates an event under an existing club.
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (int64, error) {
	if input.Title == "" || input.Date.IsZero() {
		return 0, apperrors.Validation("title and date are required")
	}
	if input.ClubID <= 0 {
		return 0, apperrors.Validation("club_id is required")
	}

	event := &eventdb.Event{
		ClubID:      input.ClubID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
	}

	err := s.runInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		exists, err := s.clubs.Exists(ctx, db, input.ClubID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("Club not found")
		}
		return s.repo.Create(ctx, db, event)
	})
	if err != nil {
		return 0, s.wrap(ctx, "CreateEvent", err)
	}

	s.logger.InfoContext(ctx, "event created",
		observability.CorrelationAttr(ctx),
		slog.Int64("event_id", event.ID),
		slog.Int64("club_id", event.ClubID),
	)
	return event.ID, nil
}

// GetEvent returns an event with its club name.
func (s *EventService) GetEvent(ctx context.Context, eventID int64) (*eventdb.EventWithClub, error) {
	event, err := s.repo.GetByID(ctx, nil, eventID)
	if err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			return nil, apperrors.NotFound("Event not found")
		}
		return nil, s.wrap(ctx, "GetEvent", err)
	}
	return event, nil
}

// ListEvents returns all events.
func (s *EventService) ListEvents(ctx context.Context) ([]eventdb.EventWithClub, error) {
	events, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, s.wrap(ctx, "ListEvents", err)
	}
	return events, nil
}

// ListForClub returns one club's events.
func (s *EventService) ListForClub(ctx context.Context, clubID int64) ([]eventdb.Event, error) {
	var events []eventdb.Event
	err := s.runInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		exists, err := s.clubs.Exists(ctx, db, clubID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("Club not found")
		}
		events, err = s.repo.ListForClub(ctx, db, clubID)
		return err
	})
	if err != nil {
		return nil, s.wrap(ctx, "ListForClub", err)
	}
	return events, nil
}

// UpdateEvent replaces an event's mutable fields.
func (s *EventService) UpdateEvent(ctx context.Context, input UpdateEventInput) error {
	if input.Title == "" || input.Date.IsZero() {
		return apperrors.Validation("title and date are required")
	}

	event := &eventdb.Event{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
	}
	if err := s.repo.Update(ctx, nil, event); err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			return apperrors.NotFound("Event not found")
		}
		return s.wrap(ctx, "UpdateEvent", err)
	}
	return nil
}

// DeleteEvent removes an event.
func (s *EventService) DeleteEvent(ctx context.Context, eventID int64) error {
	if err := s.repo.Delete(ctx, nil, eventID); err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			return apperrors.NotFound("Event not found")
		}
		return s.wrap(ctx, "DeleteEvent", err)
	}
	return nil
}

// runInTx runs fn in a transaction when a db handle is configured.
func (s *EventService) runInTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}

// wrap logs an infrastructure error and converts it for callers, passing
// through errors already classified.
func (s *EventService) wrap(ctx context.Context, op string, err error) error {
	if apperrors.KindOf(err) != apperrors.KindUnknown {
		return err
	}
	s.logger.ErrorContext(ctx, "operation failed",
		observability.CorrelationAttr(ctx),
		slog.String("operation", op),
		slog.Any("error", err),
	)
	return apperrors.TransactionFailure(fmt.Sprintf("failed to %s", op), err)
}
