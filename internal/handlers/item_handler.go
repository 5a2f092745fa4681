package handlers

import (
	"encoding/json"
	"net/http"

	"budget-backend/internal/models"
	"budget-backend/internal/services"
	"budget-backend/pkg/utils"
)

type ItemHandler struct {
	items *services.ItemService
}

func NewItemHandler(items *services.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.items.Create(r.Context(), jobID, &req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	items, err := h.items.ListByJob(r.Context(), jobID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	item, err := h.items.Get(r.Context(), itemID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	var req models.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.items.Update(r.Context(), itemID, jobID, &req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

// UpdateEntries replaces an item's entry set without touching its scalars.
func (h *ItemHandler) UpdateEntries(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	var req models.UpdateEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.items.UpdateEntries(r.Context(), itemID, jobID, &req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	if err := h.items.Delete(r.Context(), itemID, jobID); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
