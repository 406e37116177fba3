package joinrequesthandlers_test

import (
	"context"

	joinrequestservice "github.com/campusclubs/clubhub/app/modules/joinrequest/application"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
)

// FakeJoinRequestService provides a programmable stub for the
// joinrequestservice.Service interface.
type FakeJoinRequestService struct {
	CreateRequestFunc func(ctx context.Context, userID, clubID int64) (int64, error)
	ListForUserFunc   func(ctx context.Context, userID int64) ([]joinrequestdb.UserRequestRow, error)
	ListForClubFunc   func(ctx context.Context, clubID int64) ([]joinrequestdb.ClubRequestRow, error)
	TransitionFunc    func(ctx context.Context, requestID int64, status joinrequestdb.Status) error
	CancelFunc        func(ctx context.Context, requestID int64) error
}

var _ joinrequestservice.Service = (*FakeJoinRequestService)(nil)

func (f *FakeJoinRequestService) CreateRequest(ctx context.Context, userID, clubID int64) (int64, error) {
	if f.CreateRequestFunc != nil {
		return f.CreateRequestFunc(ctx, userID, clubID)
	}
	return 1, nil
}

func (f *FakeJoinRequestService) ListForUser(ctx context.Context, userID int64) ([]joinrequestdb.UserRequestRow, error) {
	if f.ListForUserFunc != nil {
		return f.ListForUserFunc(ctx, userID)
	}
	return []joinrequestdb.UserRequestRow{}, nil
}

func (f *FakeJoinRequestService) ListForClub(ctx context.Context, clubID int64) ([]joinrequestdb.ClubRequestRow, error) {
	if f.ListForClubFunc != nil {
		return f.ListForClubFunc(ctx, clubID)
	}
	return []joinrequestdb.ClubRequestRow{}, nil
}

func (f *FakeJoinRequestService) Transition(ctx context.Context, requestID int64, status joinrequestdb.Status) error {
	if f.TransitionFunc != nil {
		return f.TransitionFunc(ctx, requestID, status)
	}
	return nil
}

func (f *FakeJoinRequestService) Cancel(ctx context.Context, requestID int64) error {
	if f.CancelFunc != nil {
		return f.CancelFunc(ctx, requestID)
	}
	return nil
}
