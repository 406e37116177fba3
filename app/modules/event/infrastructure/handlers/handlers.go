package eventhandlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	eventservice "github.com/campusclubs/clubhub/app/modules/event/application"
	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/httputil"
)

// EventHandlers handles HTTP requests for events.
type EventHandlers struct {
	service eventservice.Service
	logger  *slog.Logger
}

// NewEventHandlers creates a new EventHandlers instance.
func NewEventHandlers(service eventservice.Service, logger *slog.Logger) *EventHandlers {
	return &EventHandlers{service: service, logger: logger}
}

type eventRequest struct {
	ClubID      int64     `json:"club_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
}

// CreateEvent creates a new event under a club.
func (h *EventHandlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	id, err := h.service.CreateEvent(r.Context(), eventservice.CreateEventInput{
		ClubID:      req.ClubID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	})
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, httputil.IDResponse{
		Message: "Event created successfully",
		ID:      id,
	})
}

// GetEvents lists events, optionally filtered to one club via the club_id
// query param.
func (h *EventHandlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	if clubParam := r.URL.Query().Get("club_id"); clubParam != "" {
		clubID, err := strconv.ParseInt(clubParam, 10, 64)
		if err != nil {
			httputil.RespondError(w, r, h.logger, apperrors.Validation("Invalid club ID"))
			return
		}
		events, err := h.service.ListForClub(r.Context(), clubID)
		if err != nil {
			httputil.RespondError(w, r, h.logger, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, events)
		return
	}

	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, events)
}

// GetEvent retrieves a specific event by ID.
func (h *EventHandlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, event)
}

// UpdateEvent replaces an event's mutable fields.
func (h *EventHandlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}

	var req eventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("invalid request body"))
		return
	}

	err := h.service.UpdateEvent(r.Context(), eventservice.UpdateEventInput{
		ID:          eventID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	})
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Event updated successfully"})
}

// DeleteEvent removes an event.
func (h *EventHandlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.eventIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(r.Context(), eventID); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, httputil.MessageResponse{Message: "Event deleted successfully"})
}

func (h *EventHandlers) eventIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		httputil.RespondError(w, r, h.logger, apperrors.Validation("Invalid event ID"))
		return 0, false
	}
	return eventID, true
}
