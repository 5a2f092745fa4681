package services

import (
	"context"
	"fmt"
	"strings"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/cache"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"
	"budget-backend/internal/timeutil"

	"github.com/google/uuid"
)

// ItemService enforces item-level rules before delegating to storage: entry
// dates are truncated to month starts and a batch may carry each month at most
// once.
type ItemService struct {
	repo  *repositories.ItemRepository
	jobs  *repositories.JobRepository
	cache *cache.Cache
}

func NewItemService(repo *repositories.ItemRepository, jobs *repositories.JobRepository, c *cache.Cache) *ItemService {
	return &ItemService{repo: repo, jobs: jobs, cache: c}
}

// normalizeEntries truncates every entry date to the first of its month and
// rejects batches that name the same month twice.
func normalizeEntries(entries []models.EntryInput) ([]models.EntryInput, error) {
	normalized := make([]models.EntryInput, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		month := timeutil.MonthStart(e.Date)
		key := month.Format(timeutil.DateLayout)
		if seen[key] {
			return nil, fmt.Errorf("duplicate entry month %s: %w", key, apperrors.ErrValidation)
		}
		seen[key] = true
		normalized[i] = models.EntryInput{Date: month, Amount: e.Amount}
	}
	return normalized, nil
}

func (s *ItemService) Create(ctx context.Context, jobID uuid.UUID, req *models.CreateItemRequest) (*models.Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("item name is required: %w", apperrors.ErrValidation)
	}
	if req.ItemTypeID == uuid.Nil {
		return nil, fmt.Errorf("item_type_id is required: %w", apperrors.ErrValidation)
	}

	// The job must exist; a dangling job id would only fail later on the FK.
	if _, err := s.jobs.Get(ctx, jobID); err != nil {
		return nil, err
	}

	entries, err := normalizeEntries(req.Entries)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Create(ctx, jobID, req.ItemTypeID, req.AssigneeID, req.Name, req.Description, entries)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateJobItems(ctx, jobID)
	return item, nil
}

// ListByJob returns all items of a job with their entries, serving from the
// cache when possible.
func (s *ItemService) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*models.Item, error) {
	if items, ok := s.cache.GetJobItems(ctx, jobID); ok {
		return items, nil
	}

	items, err := s.repo.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	s.cache.SetJobItems(ctx, jobID, items)
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	return s.repo.Get(ctx, itemID)
}

func (s *ItemService) Update(ctx context.Context, itemID, jobID uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("item name cannot be empty: %w", apperrors.ErrValidation)
	}

	if req.Entries != nil {
		entries, err := normalizeEntries(*req.Entries)
		if err != nil {
			return nil, err
		}
		req.Entries = &entries
	}

	item, err := s.repo.Update(ctx, itemID, jobID, req)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateJobItems(ctx, jobID)
	return item, nil
}

// UpdateEntries replaces an item's entry set, scoped to the job for ownership.
func (s *ItemService) UpdateEntries(ctx context.Context, itemID, jobID uuid.UUID, req *models.UpdateEntriesRequest) (*models.Item, error) {
	item, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.JobID != jobID {
		return nil, fmt.Errorf("item %s in job %s: %w", itemID, jobID, apperrors.ErrNotFound)
	}

	entries, err := normalizeEntries(req.Entries)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEntries(ctx, itemID, entries); err != nil {
		return nil, err
	}

	s.cache.InvalidateJobItems(ctx, jobID)
	return s.repo.Get(ctx, itemID)
}

func (s *ItemService) Delete(ctx context.Context, itemID, jobID uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, itemID, jobID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("item %s in job %s: %w", itemID, jobID, apperrors.ErrNotFound)
	}

	s.cache.InvalidateJobItems(ctx, jobID)
	return nil
}
