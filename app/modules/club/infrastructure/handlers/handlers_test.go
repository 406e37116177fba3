package clubhandlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	clubservice "github.com/campusclubs/clubhub/app/modules/club/application"
	clubhandlers "github.com/campusclubs/clubhub/app/modules/club/infrastructure/handlers"
	clubrouter "github.com/campusclubs/clubhub/app/modules/club/infrastructure/router"
	clubdb "github.com/campusclubs/clubhub/app/modules/club/infrastructure/repositories"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
)

func newTestRouter(service *FakeClubService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	clubrouter.Register(r, clubhandlers.NewClubHandlers(service, logger))
	return r
}

func TestClubHandlers_CreateClub(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		service := &FakeClubService{
			CreateClubFunc: func(_ context.Context, input clubservice.CreateClubInput) (int64, error) {
				assert.Equal(t, "Chess Club", input.Name)
				return 7, nil
			},
		}
		router := newTestRouter(service)

		body := `{"name":"Chess Club","description":"Weekly games","category":"Games","created_by":3}`
		req := httptest.NewRequest(http.MethodPost, "/clubs", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp struct {
			Message string `json:"message"`
			ID      int64  `json:"id"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Club created successfully", resp.Message)
		assert.Equal(t, int64(7), resp.ID)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router := newTestRouter(&FakeClubService{})

		req := httptest.NewRequest(http.MethodPost, "/clubs", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Validation failure from service", func(t *testing.T) {
		service := &FakeClubService{
			CreateClubFunc: func(_ context.Context, _ clubservice.CreateClubInput) (int64, error) {
				return 0, apperrors.Validation("name, description and category are required")
			},
		}
		router := newTestRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/clubs", strings.NewReader(`{"name":"Chess Club"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "name, description and category are required")
	})
}

func TestClubHandlers_GetClub(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service := &FakeClubService{
			GetClubFunc: func(_ context.Context, clubID int64) (*clubdb.ClubWithCounts, error) {
				return &clubdb.ClubWithCounts{
					Club:        &clubdb.Club{ID: clubID, Name: "Chess Club"},
					MemberCount: 12,
					EventCount:  3,
				}, nil
			},
		}
		router := newTestRouter(service)

		req := httptest.NewRequest(http.MethodGet, "/clubs/42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(12), resp["member_count"])
		assert.Equal(t, float64(3), resp["event_count"])
	})

	t.Run("Not found", func(t *testing.T) {
		service := &FakeClubService{
			GetClubFunc: func(_ context.Context, _ int64) (*clubdb.ClubWithCounts, error) {
				return nil, apperrors.NotFound("Club not found")
			},
		}
		router := newTestRouter(service)

		req := httptest.NewRequest(http.MethodGet, "/clubs/42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Club not found")
	})

	t.Run("Non-numeric ID", func(t *testing.T) {
		router := newTestRouter(&FakeClubService{})

		req := httptest.NewRequest(http.MethodGet, "/clubs/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid club ID")
	})
}

func TestClubHandlers_UpdateClub(t *testing.T) {
	service := &FakeClubService{
		UpdateClubFunc: func(_ context.Context, input clubservice.UpdateClubInput) error {
			assert.Equal(t, int64(42), input.ID)
			assert.Nil(t, input.Logo)
			return nil
		},
	}
	router := newTestRouter(service)

	body := `{"name":"Chess Club","description":"Updated","category":"Games"}`
	req := httptest.NewRequest(http.MethodPut, "/clubs/42", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Club updated successfully")
}

func TestClubHandlers_DeleteClub(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		router := newTestRouter(&FakeClubService{})

		req := httptest.NewRequest(http.MethodDelete, "/clubs/42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Club deleted successfully")
	})

	t.Run("Transaction failure is 503", func(t *testing.T) {
		service := &FakeClubService{
			DeleteClubFunc: func(_ context.Context, _ int64) error {
				return apperrors.TransactionFailure("failed to delete club", assert.AnError)
			},
		}
		router := newTestRouter(service)

		req := httptest.NewRequest(http.MethodDelete, "/clubs/42", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestClubHandlers_GetMembers(t *testing.T) {
	service := &FakeClubService{
		ListMembersFunc: func(_ context.Context, clubID int64) ([]clubdb.MemberRow, error) {
			return []clubdb.MemberRow{
				{
					Membership: &clubdb.Membership{ID: 1, ClubID: clubID, UserID: 7, Role: "Member"},
					UserName:   "Sam Okafor",
					UserEmail:  "sam@campus.edu",
				},
			}, nil
		},
	}
	router := newTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/clubs/42/members", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sam Okafor")
	assert.Contains(t, rec.Body.String(), "sam@campus.edu")
}
