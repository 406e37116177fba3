package eventdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when an event is not found.
var ErrNotFound = errors.New("event not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new event repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts an event and populates its ID.
func (r *Impl) Create(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(event).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event joined with its club name.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*EventWithClub, error) {
	db = r.resolveDB(db)
	event := &EventWithClub{Event: new(Event)}
	err := db.NewSelect().
		Model(event).
		ColumnExpr("e.*").
		ColumnExpr("c.name AS club_name").
		Join("JOIN clubs AS c ON c.id = e.club_id").
		Where("e.id = ?", eventID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event by ID: %w", err)
	}
	return event, nil
}

// List retrieves all events joined with their club names.
func (r *Impl) List(ctx context.Context, db bun.IDB) ([]EventWithClub, error) {
	db = r.resolveDB(db)
	var events []EventWithClub
	err := db.NewSelect().
		Model(&events).
		ColumnExpr("e.*").
		ColumnExpr("c.name AS club_name").
		Join("JOIN clubs AS c ON c.id = e.club_id").
		Order("e.date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListForClub retrieves the events of one club.
func (r *Impl) ListForClub(ctx context.Context, db bun.IDB, clubID int64) ([]Event, error) {
	db = r.resolveDB(db)
	var events []Event
	err := db.NewSelect().
		Model(&events).
		Where("club_id = ?", clubID).
		Order("date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list club events: %w", err)
	}
	return events, nil
}

// Update replaces the mutable fields of an event.
func (r *Impl) Update(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(event).
		Column("title", "description", "date", "location").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an event.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, eventID int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Event)(nil)).
		Where("id = ?", eventID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByClub removes every event of a club and returns the number of
// rows removed.
func (r *Impl) DeleteByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error) {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Event)(nil)).
		Where("club_id = ?", clubID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete club events: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
