package handlers

import (
	"fmt"
	"net/http"

	"budget-backend/internal/services"
	"budget-backend/pkg/utils"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// BudgetCSV streams the 12-month budget projection of a job as CSV.
func (h *ReportHandler) BudgetCSV(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "project_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	data, err := h.reports.BudgetCSV(r.Context(), projectID, jobID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=budget_%s.csv", jobID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// BudgetPDF streams the same projection as a PDF table.
func (h *ReportHandler) BudgetPDF(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "project_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	data, err := h.reports.BudgetPDF(r.Context(), projectID, jobID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=budget_%s.pdf", jobID))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
