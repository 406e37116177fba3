package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/uptrace/bun"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	eventdb "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories"
	userdb "github.com/campusclubs/clubhub/app/modules/user/infrastructure/repositories"
)

// InsertUser creates a directory user with generated identity data.
func InsertUser(t *testing.T, ctx context.Context, db bun.IDB) *userdb.User {
	t.Helper()
	user := &userdb.User{
		Name:  gofakeit.Name(),
		Email: fmt.Sprintf("%s-%s", gofakeit.LetterN(6), gofakeit.Email()),
	}
	if _, err := db.NewInsert().Model(user).Exec(ctx); err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
	return user
}

// InsertClub creates a club owned by the given user.
func InsertClub(t *testing.T, ctx context.Context, db bun.IDB, createdBy int64) *clubdb.Club {
	t.Helper()
	club := &clubdb.Club{
		Name:        gofakeit.Company(),
		Description: gofakeit.Sentence(8),
		Category:    gofakeit.RandomString([]string{"Sports", "Arts", "Games", "Tech", "Music"}),
		CreatedBy:   createdBy,
	}
	if _, err := db.NewInsert().Model(club).Exec(ctx); err != nil {
		t.Fatalf("failed to insert club: %v", err)
	}
	return club
}

// InsertMembership adds a user to a club directly, bypassing the workflow.
func InsertMembership(t *testing.T, ctx context.Context, db bun.IDB, clubID, userID int64) *clubdb.Membership {
	t.Helper()
	membership := &clubdb.Membership{
		ClubID:   clubID,
		UserID:   userID,
		Role:     "Member",
		JoinedAt: time.Now(),
	}
	if _, err := db.NewInsert().Model(membership).Exec(ctx); err != nil {
		t.Fatalf("failed to insert membership: %v", err)
	}
	return membership
}

// InsertEvent creates an event under the given club.
func InsertEvent(t *testing.T, ctx context.Context, db bun.IDB, clubID int64) *eventdb.Event {
	t.Helper()
	event := &eventdb.Event{
		ClubID:      clubID,
		Title:       gofakeit.Sentence(3),
		Description: gofakeit.Sentence(10),
		Date:        gofakeit.FutureDate(),
		Location:    gofakeit.City(),
	}
	if _, err := db.NewInsert().Model(event).Exec(ctx); err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	return event
}
