package joinrequestservice

import (
	"context"

	"github.com/uptrace/bun"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
)

// ------------------------
// Fake Join Request Repo
// ------------------------

// FakeJoinRequestRepository provides a programmable stub for the
// joinrequestdb.Repository interface.
type FakeJoinRequestRepository struct {
	trace []string

	CreateFunc           func(ctx context.Context, db bun.IDB, request *joinrequestdb.JoinRequest) error
	GetByIDFunc          func(ctx context.Context, db bun.IDB, requestID int64) (*joinrequestdb.JoinRequest, error)
	GetByUserAndClubFunc func(ctx context.Context, db bun.IDB, userID, clubID int64) (*joinrequestdb.JoinRequest, error)
	ListForUserFunc      func(ctx context.Context, db bun.IDB, userID int64) ([]joinrequestdb.UserRequestRow, error)
	ListForClubFunc      func(ctx context.Context, db bun.IDB, clubID int64) ([]joinrequestdb.ClubRequestRow, error)
	UpdateStatusFunc     func(ctx context.Context, db bun.IDB, requestID int64, status joinrequestdb.Status) error
	DeleteFunc           func(ctx context.Context, db bun.IDB, requestID int64) error
	DeleteByClubFunc     func(ctx context.Context, db bun.IDB, clubID int64) (int64, error)
}

var _ joinrequestdb.Repository = (*FakeJoinRequestRepository)(nil)

// NewFakeJoinRequestRepository initializes a new FakeJoinRequestRepository.
func NewFakeJoinRequestRepository() *FakeJoinRequestRepository {
	return &FakeJoinRequestRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeJoinRequestRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeJoinRequestRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeJoinRequestRepository) Create(ctx context.Context, db bun.IDB, request *joinrequestdb.JoinRequest) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, request)
	}
	request.ID = 1
	return nil
}

func (f *FakeJoinRequestRepository) GetByID(ctx context.Context, db bun.IDB, requestID int64) (*joinrequestdb.JoinRequest, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, requestID)
	}
	return nil, joinrequestdb.ErrNotFound
}

func (f *FakeJoinRequestRepository) GetByUserAndClub(ctx context.Context, db bun.IDB, userID, clubID int64) (*joinrequestdb.JoinRequest, error) {
	f.record("GetByUserAndClub")
	if f.GetByUserAndClubFunc != nil {
		return f.GetByUserAndClubFunc(ctx, db, userID, clubID)
	}
	return nil, joinrequestdb.ErrNotFound
}

func (f *FakeJoinRequestRepository) ListForUser(ctx context.Context, db bun.IDB, userID int64) ([]joinrequestdb.UserRequestRow, error) {
	f.record("ListForUser")
	if f.ListForUserFunc != nil {
		return f.ListForUserFunc(ctx, db, userID)
	}
	return []joinrequestdb.UserRequestRow{}, nil
}

func (f *FakeJoinRequestRepository) ListForClub(ctx context.Context, db bun.IDB, clubID int64) ([]joinrequestdb.ClubRequestRow, error) {
	f.record("ListForClub")
	if f.ListForClubFunc != nil {
		return f.ListForClubFunc(ctx, db, clubID)
	}
	return []joinrequestdb.ClubRequestRow{}, nil
}

func (f *FakeJoinRequestRepository) UpdateStatus(ctx context.Context, db bun.IDB, requestID int64, status joinrequestdb.Status) error {
	f.record("UpdateStatus")
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, db, requestID, status)
	}
	return nil
}

func (f *FakeJoinRequestRepository) Delete(ctx context.Context, db bun.IDB, requestID int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, requestID)
	}
	return nil
}

func (f *FakeJoinRequestRepository) DeleteByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error) {
	f.record("DeleteByClub")
	if f.DeleteByClubFunc != nil {
		return f.DeleteByClubFunc(ctx, db, clubID)
	}
	return 0, nil
}

// ------------------------
// Fake Club Repo
// ------------------------

// FakeClubRepository stubs the clubdb.Repository methods the join-request
// service touches.
type FakeClubRepository struct {
	trace []string

	ExistsFunc           func(ctx context.Context, db bun.IDB, clubID int64) (bool, error)
	InsertMembershipFunc func(ctx context.Context, db bun.IDB, membership *clubdb.Membership) (bool, error)
}

var _ clubdb.Repository = (*FakeClubRepository)(nil)

func NewFakeClubRepository() *FakeClubRepository {
	return &FakeClubRepository{trace: []string{}}
}

func (f *FakeClubRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeClubRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeClubRepository) Create(ctx context.Context, db bun.IDB, club *clubdb.Club) error {
	f.record("Create")
	return nil
}

func (f *FakeClubRepository) GetByID(ctx context.Context, db bun.IDB, clubID int64) (*clubdb.ClubWithCounts, error) {
	f.record("GetByID")
	return nil, clubdb.ErrNotFound
}

func (f *FakeClubRepository) List(ctx context.Context, db bun.IDB) ([]clubdb.ClubWithCounts, error) {
	f.record("List")
	return []clubdb.ClubWithCounts{}, nil
}

func (f *FakeClubRepository) Update(ctx context.Context, db bun.IDB, club *clubdb.Club) error {
	f.record("Update")
	return nil
}

func (f *FakeClubRepository) Delete(ctx context.Context, db bun.IDB, clubID int64) error {
	f.record("Delete")
	return nil
}

func (f *FakeClubRepository) Exists(ctx context.Context, db bun.IDB, clubID int64) (bool, error) {
	f.record("Exists")
	if f.ExistsFunc != nil {
		return f.ExistsFunc(ctx, db, clubID)
	}
	return true, nil
}

func (f *FakeClubRepository) DeleteMembershipsByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error) {
	f.record("DeleteMembershipsByClub")
	return 0, nil
}

func (f *FakeClubRepository) InsertMembershipIfAbsent(ctx context.Context, db bun.IDB, membership *clubdb.Membership) (bool, error) {
	f.record("InsertMembershipIfAbsent")
	if f.InsertMembershipFunc != nil {
		return f.InsertMembershipFunc(ctx, db, membership)
	}
	return true, nil
}

func (f *FakeClubRepository) ListMembers(ctx context.Context, db bun.IDB, clubID int64) ([]clubdb.MemberRow, error) {
	f.record("ListMembers")
	return []clubdb.MemberRow{}, nil
}
