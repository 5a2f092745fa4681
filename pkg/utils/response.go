package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"budget-backend/internal/apperrors"
)

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[Response] Failed to encode JSON: %v", err)
	}
}

// RespondError maps an error to its HTTP status: validation errors become 400,
// not-found 404, everything else a generic 500 so storage details never leak.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		RespondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		RespondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		log.Printf("[Error] %v", err)
		RespondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
