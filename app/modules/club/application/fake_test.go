package clubservice

import (
	"context"

	"github.com/uptrace/bun"

	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	eventdb "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
)

// ------------------------
// Fake Club Repo
// ------------------------

// FakeClubRepository provides a programmable stub for the clubdb.Repository
// interface.
type FakeClubRepository struct {
	trace []string

	CreateFunc                  func(ctx context.Context, db bun.IDB, club *clubdb.Club) error
	GetByIDFunc                 func(ctx context.Context, db bun.IDB, clubID int64) (*clubdb.ClubWithCounts, error)
	ListFunc                    func(ctx context.Context, db bun.IDB) ([]clubdb.ClubWithCounts, error)
	UpdateFunc                  func(ctx context.Context, db bun.IDB, club *clubdb.Club) error
	DeleteFunc                  func(ctx context.Context, db bun.IDB, clubID int64) error
	ExistsFunc                  func(ctx context.Context, db bun.IDB, clubID int64) (bool, error)
	DeleteMembershipsByClubFunc func(ctx context.Context, db bun.IDB, clubID int64) (int64, error)
	InsertMembershipFunc        func(ctx context.Context, db bun.IDB, membership *clubdb.Membership) (bool, error)
	ListMembersFunc             func(ctx context.Context, db bun.IDB, clubID int64) ([]clubdb.MemberRow, error)
}

var _ clubdb.Repository = (*FakeClubRepository)(nil)

// NewFakeClubRepository initializes a new FakeClubRepository.
func NewFakeClubRepository() *FakeClubRepository {
	return &FakeClubRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
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
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, club)
	}
	club.ID = 1
	return nil
}

func (f *FakeClubRepository) GetByID(ctx context.Context, db bun.IDB, clubID int64) (*clubdb.ClubWithCounts, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, clubID)
	}
	return nil, clubdb.ErrNotFound
}

func (f *FakeClubRepository) List(ctx context.Context, db bun.IDB) ([]clubdb.ClubWithCounts, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return []clubdb.ClubWithCounts{}, nil
}

func (f *FakeClubRepository) Update(ctx context.Context, db bun.IDB, club *clubdb.Club) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, club)
	}
	return nil
}

func (f *FakeClubRepository) Delete(ctx context.Context, db bun.IDB, clubID int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, clubID)
	}
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
	if f.DeleteMembershipsByClubFunc != nil {
		return f.DeleteMembershipsByClubFunc(ctx, db, clubID)
	}
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
	if f.ListMembersFunc != nil {
		return f.ListMembersFunc(ctx, db, clubID)
	}
	return []clubdb.MemberRow{}, nil
}

// ------------------------
// Fake Event Repo
// ------------------------

// FakeEventRepository stubs the eventdb.Repository methods the club service
// touches.
type FakeEventRepository struct {
	trace []string

	DeleteByClubFunc func(ctx context.Context, db bun.IDB, clubID int64) (int64, error)
}

var _ eventdb.Repository = (*FakeEventRepository)(nil)

func NewFakeEventRepository() *FakeEventRepository {
	return &FakeEventRepository{trace: []string{}}
}

func (f *FakeEventRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeEventRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeEventRepository) Create(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.record("Create")
	return nil
}

func (f *FakeEventRepository) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.EventWithClub, error) {
	f.record("GetByID")
	return nil, eventdb.ErrNotFound
}

func (f *FakeEventRepository) List(ctx context.Context, db bun.IDB) ([]eventdb.EventWithClub, error) {
	f.record("List")
	return []eventdb.EventWithClub{}, nil
}

func (f *FakeEventRepository) ListForClub(ctx context.Context, db bun.IDB, clubID int64) ([]eventdb.Event, error) {
	f.record("ListForClub")
	return []eventdb.Event{}, nil
}

func (f *FakeEventRepository) Update(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.record("Update")
	return nil
}

func (f *FakeEventRepository) Delete(ctx context.Context, db bun.IDB, eventID int64) error {
	f.record("Delete")
	return nil
}

func (f *FakeEventRepository) DeleteByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error) {
	f.record("DeleteByClub")
	if f.DeleteByClubFunc != nil {
		return f.DeleteByClubFunc(ctx, db, clubID)
	}
	return 0, nil
}

// ------------------------
// Fake Join Request Repo
// ------------------------

// FakeJoinRequestRepository stubs the joinrequestdb.Repository methods the
// club service touches.
type FakeJoinRequestRepository struct {
	trace []string

	DeleteByClubFunc func(ctx context.Context, db bun.IDB, clubID int64) (int64, error)
}

var _ joinrequestdb.Repository = (*FakeJoinRequestRepository)(nil)

func NewFakeJoinRequestRepository() *FakeJoinRequestRepository {
	return &FakeJoinRequestRepository{trace: []string{}}
}

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
	return nil
}

func (f *FakeJoinRequestRepository) GetByID(ctx context.Context, db bun.IDB, requestID int64) (*joinrequestdb.JoinRequest, error) {
	f.record("GetByID")
	return nil, joinrequestdb.ErrNotFound
}

func (f *FakeJoinRequestRepository) GetByUserAndClub(ctx context.Context, db bun.IDB, userID, clubID int64) (*joinrequestdb.JoinRequest, error) {
	f.record("GetByUserAndClub")
	return nil, joinrequestdb.ErrNotFound
}

func (f *FakeJoinRequestRepository) ListForUser(ctx context.Context, db bun.IDB, userID int64) ([]joinrequestdb.UserRequestRow, error) {
	f.record("ListForUser")
	return []joinrequestdb.UserRequestRow{}, nil
}

func (f *FakeJoinRequestRepository) ListForClub(ctx context.Context, db bun.IDB, clubID int64) ([]joinrequestdb.ClubRequestRow, error) {
	f.record("ListForClub")
	return []joinrequestdb.ClubRequestRow{}, nil
}

func (f *FakeJoinRequestRepository) UpdateStatus(ctx context.Context, db bun.IDB, requestID int64, status joinrequestdb.Status) error {
	f.record("UpdateStatus")
	return nil
}

func (f *FakeJoinRequestRepository) Delete(ctx context.Context, db bun.IDB, requestID int64) error {
	f.record("Delete")
	return nil
}

func (f *FakeJoinRequestRepository) DeleteByClub(ctx context.Context, db bun.IDB, clubID int64) (int64, error) {
	f.record("DeleteByClub")
	if f.DeleteByClubFunc != nil {
		return f.DeleteByClubFunc(ctx, db, clubID)
	}
	return 0, nil
}
