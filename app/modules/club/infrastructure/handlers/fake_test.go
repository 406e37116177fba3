package clubhandlers_test

import (
	"context"

	clubservice "github.com/campusclubs/clubhub/app/modules/club/application"
	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
)

// FakeClubService provides a programmable stub for the clubservice.Service
// interface.
type FakeClubService struct {
	CreateClubFunc  func(ctx context.Context, input clubservice.CreateClubInput) (int64, error)
	GetClubFunc     func(ctx context.Context, clubID int64) (*clubdb.ClubWithCounts, error)
	ListClubsFunc   func(ctx context.Context) ([]clubdb.ClubWithCounts, error)
	UpdateClubFunc  func(ctx context.Context, input clubservice.UpdateClubInput) error
	DeleteClubFunc  func(ctx context.Context, clubID int64) error
	ListMembersFunc func(ctx context.Context, clubID int64) ([]clubdb.MemberRow, error)
}

var _ clubservice.Service = (*FakeClubService)(nil)

func (f *FakeClubService) CreateClub(ctx context.Context, input clubservice.CreateClubInput) (int64, error) {
	if f.CreateClubFunc != nil {
		return f.CreateClubFunc(ctx, input)
	}
	return 1, nil
}

func (f *FakeClubService) GetClub(ctx context.Context, clubID int64) (*clubdb.ClubWithCounts, error) {
	if f.GetClubFunc != nil {
		return f.GetClubFunc(ctx, clubID)
	}
	return &clubdb.ClubWithCounts{Club: &clubdb.Club{ID: clubID}}, nil
}

func (f *FakeClubService) ListClubs(ctx context.Context) ([]clubdb.ClubWithCounts, error) {
	if f.ListClubsFunc != nil {
		return f.ListClubsFunc(ctx)
	}
	return []clubdb.ClubWithCounts{}, nil
}

func (f *FakeClubService) UpdateClub(ctx context.Context, input clubservice.UpdateClubInput) error {
	if f.UpdateClubFunc != nil {
		return f.UpdateClubFunc(ctx, input)
	}
	return nil
}

func (f *FakeClubService) DeleteClub(ctx context.Context, clubID int64) error {
	if f.DeleteClubFunc != nil {
		return f.DeleteClubFunc(ctx, clubID)
	}
	return nil
}

func (f *FakeClubService) ListMembers(ctx context.Context, clubID int64) ([]clubdb.MemberRow, error) {
	if f.ListMembersFunc != nil {
		return f.ListMembersFunc(ctx, clubID)
	}
	return []clubdb.MemberRow{}, nil
}
