package joinrequesthandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	joinrequestservice "github.com/campusclubs/clubhub/app/modules/joinrequest/application"
	joinrequestdb "github.com/campusclubs/clubhub/app/modules/joinrequest/infrastructure/repositories"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/httputil"
)

// JoinRequestHandlers handles HTTP requests for the join-request workflow.
type JoinRequestHandlers struct {
	service joinrequestservice.Service
	logger  *slog.Logger
}

// NewJoinRequestHandlers creates a new JoinRequestHandlers instance.
func NewJoinRequestHandlers(service joinrequestservice.Service, logger *slog.Logger) *JoinRequestHandlers {
	return &JoinRequestHandlers{service: service, logger: logger}
}

type createRequestRequest struct {
	UserID int64 `json:"user_id"`
	ClubID int64 `json:"club_id"`
}

type transitionRequest struct {
	Status string `json:"status"`
}

// CreateRequest files a new join request.
func (h *JoinRequestHandlers) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	id, err := h.service.CreateRequest(r.Context(), req.UserID, req.ClubID)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, httputil.IDResponse{
		Message: "Join request created successfully",
		ID:      id,
	})
}

// ListRequests lists join requests for a user or for a club; exactly one of
// the user_id / club_id query params must be supplied.
func (h *JoinRequestHandlers) ListRequests(w http.ResponseWriter, r *http.Request) {
	userParam := r.URL.Query().Get("user_id")
	clubParam := r.URL.Query().Get("club_id")

	switch {
	case userParam != "" && clubParam == "":
		userID, err := strconv.ParseInt(userParam, 10, 64)
		if err != nil {
			httputil.RespondError(w, r, h.logger, apperrors.Validation("Invalid user ID"))
			return
		}
		rows, err := h.service.ListForUser(r.Context(), userID)
		if err != nil {
			httputil.RespondError(w, r, h.logger, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, rows)

	case clubParam != "" && userParam == "":
		clubID, err := strconv.ParseInt(clubParam, 10, 64)
		if err != nil {
			httputil.RespondError(w, r, h.logger, apperrors.Validation("Invalid club ID"))
			return
		}
		rows, err := h.service.ListForClub(r.Context(), clubID)
		if err != nil {
			httputil.RespondError(w, r, h.logger, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, rows)

	default:
		httputil.RespondError(w, r, h.logger, apperrors.Validation("User ID or Club ID is required"))
	}
}

// TransitionRequest moves a request to a new status.
func (h *JoinRequestHandlers) TransitionRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.requestIDParam(w, r)
	if !ok {
		return
	}

	var req transitionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	if err := h.service.Transition(r.Context(), requestID, joinrequestdb.Status(req.Status)); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Join request updated successfully"})
}

// CancelRequest deletes a request outright.
func (h *JoinRequestHandlers) CancelRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.requestIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), requestID); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Join request cancelled successfully"})
}

func (h *JoinRequestHandlers) requestIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("Invalid request ID"))
		return 0, false
	}
	return requestID, true
}
