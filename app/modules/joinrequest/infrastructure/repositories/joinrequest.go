package joinrequestdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a join request is not found.
var ErrNotFound = errors.New("join request not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new join-request repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a pending request and populates its ID. The unique index
// on (user_id, club_id) rejects a concurrent duplicate; callers translate
// that violation to a conflict.
func (r *Impl) Create(ctx context.Context, db bun.IDB, request *JoinRequest) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(request).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create join request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by ID.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, requestID int64) (*JoinRequest, error) {
	db = r.resolveDB(db)
	request := new(JoinRequest)
	err := db.NewSelect().
		Model(request).
		Where("id = ?", requestID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get join request by ID: %w", err)
	}
	return request, nil
}

// GetByUserAndClub retrieves the request for a (user, club) pair in any
// status.
func (r *Impl) GetByUserAndClub(ctx context.Context, db bun.IDB, userID, clubID int64) (*JoinRequest, error) {
	db = r.resolveDB(db)
	request := new(JoinRequest)
	err := db.NewSelect().
		Model(request).
		Where("user_id = ?", userID).
		Where("club_id = ?", clubID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get join request by user and club: %w", err)
	}
	return request, nil
}

// ListForUser retrieves a user's requests joined with club names.
func (r *Impl) ListForUser(ctx context.Context, db bun.IDB, userID int64) ([]UserRequestRow, error) {
	db = r.resolveDB(db)
	var requests []UserRequestRow
	err := db.NewSelect().
		Model(&requests).
		ColumnExpr("jr.*").
		ColumnExpr("c.name AS club_name").
		Join("JOIN clubs AS c ON c.id = jr.club_id").
		Where("jr.user_id = ?", userID).
		Order("jr.request_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests for user: %w", err)
	}
	return requests, nil
}

// ListForClub retrieves a club's requests joined with requester identities.
func (r *Impl) ListForClub(ctx context.Context, db bun.IDB, clubID int64) ([]ClubRequestRow, error) {
	db = r.resolveDB(db)
	var requests []ClubRequestRow
	err := db.NewSelect().
		Model(&requests).
		ColumnExpr("jr.*").
		ColumnExpr("u.name AS user_name").
		ColumnExpr("u.email AS user_email").
		Join("JOIN users AS u ON u.id = jr.user_id").
		Where("jr.club_id = ?", clubID).
		Order("jr.request_date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests for club: %w", err)
	}
	return requests, nil
}

// UpdateStatus sets the status of a request.
func (r *Impl) UpdateStatus(ctx context.Context, db bun.IDB, requestID int64, status Status) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*JoinRequest)(nil)).
		Set("status = ?", status).
		Where("id = ?", requestID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update join request status: %w", err)
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

// Delete removes a request row outright.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, requestID int64) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*JoinRequest)(nil)).
		Where("id = ?", requestID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete join request: %w", err)
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

// DeleteByClub removes every request referencing a club and returns the
// number of rows removed.
func (r *Impl) DeleteByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error) {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*JoinRequest)(nil)).
		Where("club_id = ?", clubID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete join requests for club: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
