// Package httputil holds the JSON request/response helpers shared by the
// module handlers.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campusclubs/clubhub/app/shared/apperrors"
	"github.com/campusclubs/clubhub/app/shared/observability"
)

// ErrorResponse is the error envelope returned on every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the confirmation envelope for mutations without a body.
type MessageResponse struct {
	Message string `json:"message"`
}

// IDResponse confirms a creation and carries the new identifier.
type IDResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// RespondJSON writes v as a JSON body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// RespondError maps a service error to its HTTP status and envelope. The
// caller-safe message is echoed for known kinds; anything unclassified is
// logged with its cause and masked behind a generic message.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.KindNotFound:
		RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.KindConflict:
		RespondJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.KindTransactionFailure:
		logger.ErrorContext(r.Context(), "transaction failed",
			observability.CorrelationAttr(r.Context()),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		RespondJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(r.Context(), "unhandled service error",
			observability.CorrelationAttr(r.Context()),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
