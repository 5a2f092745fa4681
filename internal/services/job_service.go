package services

import (
	"context"
	"fmt"
	"strings"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"

	"github.com/google/uuid"
)

type JobService struct {
	repo     *repositories.JobRepository
	projects *repositories.ProjectRepository
}

func NewJobService(repo *repositories.JobRepository, projects *repositories.ProjectRepository) *JobService {
	return &JobService{repo: repo, projects: projects}
}

func (s *JobService) Create(ctx context.Context, projectID uuid.UUID, req *models.CreateJobRequest) (*models.Job, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("job name is required: %w", apperrors.ErrValidation)
	}
	model, err := models.ParseBusinessModel(req.BusinessModel)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, projectID, req.Name, req.Description, model)
}

func (s *JobService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Job, error) {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.FindByProjectID(ctx, projectID)
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *JobService) Update(ctx context.Context, id, projectID uuid.UUID, req *models.UpdateJobRequest) (*models.Job, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("job name cannot be empty: %w", apperrors.ErrValidation)
	}

	var model *models.BusinessModel
	if req.BusinessModel != nil {
		m, err := models.ParseBusinessModel(*req.BusinessModel)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
		}
		model = &m
	}

	return s.repo.Update(ctx, id, projectID, req.Name, req.Description, model)
}

func (s *JobService) Delete(ctx context.Context, id, projectID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id, projectID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("job %s in project %s: %w", id, projectID, apperrors.ErrNotFound)
	}
	return nil
}
