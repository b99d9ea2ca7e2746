package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/horizon60/Horizon60-Backend/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondError sends a structured error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string, details interface{}) {
	respondJSON(w, status, map[string]interface{}{
		"error":   message,
		"details": details,
	})
}

// respondServiceError maps service-layer errors to HTTP status codes:
// missing entities to 404, business-rule violations to 400, everything
// else to 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrHoldingNotFound),
		errors.Is(err, apperrors.ErrSnapshotNotFound),
		errors.Is(err, apperrors.ErrForecastSettingsNotFound),
		errors.Is(err, apperrors.ErrCredentialNotFound):
		respondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, apperrors.ErrHoldingKindMismatch),
		errors.Is(err, apperrors.ErrInvalidAccountType),
		errors.Is(err, apperrors.ErrEmptyTicker),
		errors.Is(err, apperrors.ErrNonPositiveQuantity),
		errors.Is(err, apperrors.ErrInvalidDate):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// decodeBody reads a JSON request body, responding 400 on malformed input.
// Returns false when decoding failed and a response was already written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}
