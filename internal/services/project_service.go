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

type ProjectService struct {
	repo *repositories.ProjectRepository
}

func NewProjectService(repo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, req *models.CreateProjectRequest, createdBy uuid.UUID) (*models.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("project name is required: %w", apperrors.ErrValidation)
	}
	return s.repo.Create(ctx, req.Name, req.Description, createdBy)
}

func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateProjectRequest) (*models.Project, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("project name cannot be empty: %w", apperrors.ErrValidation)
	}
	return s.repo.Update(ctx, id, req)
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("project %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
