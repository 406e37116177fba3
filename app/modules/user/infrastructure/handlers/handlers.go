package userhandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	userservice "github.com/campusclubs/clubhub/app/modules/user/application"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/httputil"
)

// UserHandlers handles HTTP requests for the user directory.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger) *UserHandlers {
	return &UserHandlers{service: service, logger: logger}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUser adds a directory entry.
func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	id, err := h.service.CreateUser(r.Context(), req.Name, req.Email)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, httputil.IDResponse{
		Message: "User created successfully",
		ID:      id,
	})
}

// GetUser retrieves a directory entry by ID.
func (h *UserHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("Invalid user ID"))
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, user)
}

// GetUsers retrieves all directory entries.
func (h *UserHandlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, users)
}
