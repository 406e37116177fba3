package clubintegrationtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clubservice "github.com/campusclubs/clubhub/app/modules/club/application"
	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	eventdb "github.com/campusclubs/clubhub/app/modules/event/infrastructure/repositories"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/integration_tests/testutils"
)

func TestClubLifecycle_CreateAndGetWithCounts(t *testing.T) {
	deps := SetupTestClubService(t)

	creator := testutils.InsertUser(t, deps.Ctx, deps.BunDB)

	id, err := deps.Service.CreateClub(deps.Ctx, clubservice.CreateClubInput{
		Name:        "Chess Club",
		Description: "Weekly games",
		Category:    "Games",
		CreatedBy:   creator.ID,
	})
	require.NoError(t, err)

	club, err := deps.Service.GetClub(deps.Ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Chess Club", club.Name)
	assert.Equal(t, int64(0), club.MemberCount, "creator must not be auto-membered")
	assert.Equal(t, int64(0), club.EventCount)

	// Counts are derived per read, never stored.
	member := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	testutils.InsertMembership(t, deps.Ctx, deps.BunDB, id, member.ID)
	testutils.InsertEvent(t, deps.Ctx, deps.BunDB, id)

	club, err = deps.Service.GetClub(deps.Ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), club.MemberCount)
	assert.Equal(t, int64(1), club.EventCount)
}

func TestClubLifecycle_ListReflectsLiveCounts(t *testing.T) {
	deps := SetupTestClubService(t)

	creator := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	a := testutils.InsertClub(t, deps.Ctx, deps.BunDB, creator.ID)
	b := testutils.InsertClub(t, deps.Ctx, deps.BunDB, creator.ID)
	testutils.InsertMembership(t, deps.Ctx, deps.BunDB, a.ID, creator.ID)

	clubs, err := deps.Service.ListClubs(deps.Ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 2)

	byID := map[int64]clubdb.ClubWithCounts{}
	for _, c := range clubs {
		byID[c.ID] = c
	}
	assert.Equal(t, int64(1), byID[a.ID].MemberCount)
	assert.Equal(t, int64(0), byID[b.ID].MemberCount)
}

func TestClubLifecycle_UpdateReplacesFields(t *testing.T) {
	deps := SetupTestClubService(t)

	creator := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	club := testutils.InsertClub(t, deps.Ctx, deps.BunDB, creator.ID)

	logo := "https://cdn.example.edu/logo.png"
	err := deps.Service.UpdateClub(deps.Ctx, clubservice.UpdateClubInput{
		ID:          club.ID,
		Name:        "Renamed Club",
		Description: "New description",
		Category:    "Arts",
		Logo:        &logo,
	})
	require.NoError(t, err)

	got, err := deps.Service.GetClub(deps.Ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Club", got.Name)
	assert.Equal(t, "Arts", got.Category)
	require.NotNil(t, got.Logo)
	assert.Equal(t, logo, *got.Logo)
}

func TestClubLifecycle_DeleteCascades(t *testing.T) {
	deps := SetupTestClubService(t)

	creator := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	club := testutils.InsertClub(t, deps.Ctx, deps.BunDB, creator.ID)
	other := testutils.InsertClub(t, deps.Ctx, deps.BunDB, creator.ID)

	member := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	testutils.InsertMembership(t, deps.Ctx, deps.BunDB, club.ID, member.ID)
	testutils.InsertEvent(t, deps.Ctx, deps.BunDB, club.ID)
	testutils.InsertMembership(t, deps.Ctx, deps.BunDB, other.ID, member.ID)
	testutils.InsertEvent(t, deps.Ctx, deps.BunDB, other.ID)

	requester := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	_, err := deps.Requests.CreateRequest(deps.Ctx, requester.ID, club.ID)
	require.NoError(t, err)

	require.NoError(t, deps.Service.DeleteClub(deps.Ctx, club.ID))

	_, err = deps.Service.GetClub(deps.Ctx, club.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	count, err := deps.BunDB.NewSelect().Model((*clubdb.Membership)(nil)).
		Where("club_id = ?", club.ID).Count(deps.Ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "memberships of the deleted club must be gone")

	count, err = deps.BunDB.NewSelect().Model((*eventdb.Event)(nil)).
		Where("club_id = ?", club.ID).Count(deps.Ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "events of the deleted club must be gone")

	count, err = deps.BunDB.NewSelect().Model((*joinrequestdb.JoinRequest)(nil)).
		Where("club_id = ?", club.ID).Count(deps.Ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "join requests of the deleted club must be gone")

	// The other club is untouched.
	got, err := deps.Service.GetClub(deps.Ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.MemberCount)
	assert.Equal(t, int64(1), got.EventCount)
}

func TestClubLifecycle_DeleteMissingClub(t *testing.T) {
	deps := SetupTestClubService(t)

	err := deps.Service.DeleteClub(deps.Ctx, 424242)

	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestClubLifecycle_ListMembersJoinsDirectory(t *testing.T) {
	deps := SetupTestClubService(t)

	creator := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	club := testutils.InsertClub(t, deps.Ctx, deps.BunDB, creator.ID)
	member := testutils.InsertUser(t, deps.Ctx, deps.BunDB)
	testutils.InsertMembership(t, deps.Ctx, deps.BunDB, club.ID, member.ID)

	members, err := deps.Service.ListMembers(deps.Ctx, club.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, member.ID, members[0].UserID)
	assert.Equal(t, member.Name, members[0].UserName)
	assert.Equal(t, member.Email, members[0].UserEmail)
}
