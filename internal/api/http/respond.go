package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"lightevent-backend/internal/domain"
	"lightevent-backend/internal/logger"
	"lightevent-backend/internal/security"
	"lightevent-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP status codes. Unrecognized errors
// become a 500 with a generic body so internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	var capErr *domain.CapacityError

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrDiscussionNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.As(err, &capErr),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrRegistrationNotPending),
		errors.Is(err, domain.ErrPaymentNotPending),
		errors.Is(err, domain.ErrCodeAlreadyUsed),
		errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrApplicationPending),
		errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorizedActor):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEventNotOpen),
		errors.Is(err, domain.ErrDeadlinePassed),
		errors.Is(err, domain.ErrInvalidCode),
		errors.Is(err, domain.ErrNotEligibleForCheckIn),
		errors.Is(err, domain.ErrEventNotEnded),
		errors.Is(err, domain.ErrNoQualifyingRegistration),
		errors.Is(err, domain.ErrReplyToReply):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	default:
		logger.Error("Unhandled error in request", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
