package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/middleware"
	"budget-backend/internal/models"
	"budget-backend/internal/services"
	"budget-backend/pkg/utils"
)

type PlEntryHandler struct {
	ledger *services.LedgerService
}

func NewPlEntryHandler(ledger *services.LedgerService) *PlEntryHandler {
	return &PlEntryHandler{ledger: ledger}
}

// List returns a project's ledger rows for the scenario named in the query
// string, ordered by date.
func (h *PlEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "project_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	scenario := r.URL.Query().Get("scenario")
	if scenario == "" {
		utils.RespondError(w, fmt.Errorf("scenario query parameter is required: %w", apperrors.ErrValidation))
		return
	}

	entries, err := h.ledger.List(r.Context(), projectID, scenario)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, entries)
}

// BulkUpsert writes a batch of project-level ledger rows atomically.
func (h *PlEntryHandler) BulkUpsert(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "project_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		utils.RespondJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var req models.BulkUpsertPlEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.ledger.BulkUpsert(r.Context(), projectID, &req, userID); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]int{"upserted": len(req.Entries)})
}
