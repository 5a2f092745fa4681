package handlers

import (
	"fmt"
	"net/http"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/repositories"
	"budget-backend/pkg/utils"

	"github.com/google/uuid"
)

// AccountHandler serves the accounting reference data straight from the
// repository; there is nothing to validate on reads.
type AccountHandler struct {
	accounts *repositories.AccountRepository
}

func NewAccountHandler(accounts *repositories.AccountRepository) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListAccounts(r.Context())
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) ListItemTypes(w http.ResponseWriter, r *http.Request) {
	var accountID *uuid.UUID
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(w, fmt.Errorf("invalid account_id %q: %w", raw, apperrors.ErrValidation))
			return
		}
		accountID = &id
	}

	types, err := h.accounts.ListItemTypes(r.Context(), accountID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, types)
}

func (h *AccountHandler) ListAccountItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.accounts.ListAccountItems(r.Context())
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}
