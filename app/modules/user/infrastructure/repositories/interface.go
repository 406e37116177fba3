package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for user directory persistence.
type Repository interface {
	// Create inserts a user and populates its ID.
	Create(ctx context.Context, db bun.IDB, user *User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, db bun.IDB, userID int64) (*User, error)

	// List retrieves all users.
	List(ctx context.Context, db bun.IDB) ([]User, error)
}
