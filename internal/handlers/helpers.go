package handlers

import (
	"fmt"
	"net/http"

	"budget-backend/internal/apperrors"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// pathUUID parses a uuid path variable, returning a validation error the
// response mapper turns into a 400.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q: %w", name, raw, apperrors.ErrValidation)
	}
	return id, nil
}
