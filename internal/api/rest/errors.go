package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Beenod004/Networkfault/internal/pkg/logger"
	"github.com/Beenod004/Networkfault/internal/pkg/validate"
	"github.com/Beenod004/Networkfault/internal/service"
)

// APIError represents a structured API error response
type APIError struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code,omitempty"`
	Message   string                 `json:"message"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Error codes for common scenarios
const (
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
)

// respondStructuredError sends a structured error response with error code and details
func respondStructuredError(w http.ResponseWriter, status int, code, message string, requestID string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := APIError{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Details:   details,
	}
	json.NewEncoder(w).Encode(err)
}

// respondErrorWithCode is a convenience wrapper for structured errors
func respondErrorWithCode(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondStructuredError(w, status, code, message, logger.FromContext(r.Context()), nil)
}

// respondServiceError maps service and validation errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := logger.FromContext(r.Context())
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		respondStructuredError(w, http.StatusUnprocessableEntity, ErrCodeValidationFailed, verr.Error(), reqID, verr.Details())
	case errors.Is(err, service.ErrNotFound):
		respondStructuredError(w, http.StatusNotFound, ErrCodeNotFound, err.Error(), reqID, nil)
	case errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, service.ErrUnknownMode),
		errors.Is(err, service.ErrLinkModeUnavailable):
		respondStructuredError(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error(), reqID, nil)
	default:
		respondStructuredError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error(), reqID, nil)
	}
}
