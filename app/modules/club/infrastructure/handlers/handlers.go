package clubhandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	clubservice "github.com/campusclubs/clubhub/app/modules/club/application"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/httputil"
)

// ClubHandlers handles HTTP requests for clubs.
type ClubHandlers struct {
	service clubservice.Service
	logger  *slog.Logger
}

// NewClubHandlers creates a new ClubHandlers instance.
func NewClubHandlers(service clubservice.Service, logger *slog.Logger) *ClubHandlers {
	return &ClubHandlers{service: service, logger: logger}
}

type createClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedBy   int64  `json:"created_by"`
}

type updateClubRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Logo        *string `json:"logo"`
}

// CreateClub creates a new club.
func (h *ClubHandlers) CreateClub(w http.ResponseWriter, r *http.Request) {
	var req createClubRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	id, err := h.service.CreateClub(r.Context(), clubservice.CreateClubInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, httputil.IDResponse{
		Message: "Club created successfully",
		ID:      id,
	})
}

// GetClubs retrieves all clubs with their aggregates.
func (h *ClubHandlers) GetClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.service.ListClubs(r.Context())
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, clubs)
}

// GetClub retrieves a specific club by ID.
func (h *ClubHandlers) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := h.clubIDParam(w, r)
	if !ok {
		return
	}

	club, err := h.service.GetClub(r.Context(), clubID)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, club)
}

// UpdateClub replaces a club's mutable fields.
func (h *ClubHandlers) UpdateClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := h.clubIDParam(w, r)
	if !ok {
		return
	}

	var req updateClubRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	err := h.service.UpdateClub(r.Context(), clubservice.UpdateClubInput{
		ID:          clubID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Logo:        req.Logo,
	})
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Club updated successfully"})
}

// DeleteClub removes a club and all its dependents.
func (h *ClubHandlers) DeleteClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := h.clubIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteClub(r.Context(), clubID); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Club deleted successfully"})
}

// GetMembers retrieves a club's roster.
func (h *ClubHandlers) GetMembers(w http.ResponseWriter, r *http.Request) {
	clubID, ok := h.clubIDParam(w, r)
	if !ok {
		return
	}

	members, err := h.service.ListMembers(r.Context(), clubID)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, members)
}

func (h *ClubHandlers) clubIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	clubID, err := strconv.ParseInt(chi.URLParam(r, "clubID"), 10, 64)
	if err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("Invalid club ID"))
		return 0, false
	}
	return clubID, true
}
