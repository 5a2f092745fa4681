package handlers

import (
	"encoding/json"
	"net/http"

	"budget-backend/internal/models"
	"budget-backend/internal/services"
	"budget-backend/pkg/utils"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "project_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	var req models.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobs.Create(r.Context(), projectID, &req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathUUID(r, "project_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	jobs, err := h.jobs.ListByProject(r.Context(), projectID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathUUID(r, "job_id")
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	job, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobs.Update(r.Context(), jobID, projectID, &req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.jobs.Delete(r.Context(), jobID, projectID); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
