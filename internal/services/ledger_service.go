package services

import (
	"context"
	"fmt"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/models"
	"budget-backend/internal/repositories"
	"budget-backend/internal/timeutil"

	"github.com/google/uuid"
)

// LedgerService fronts the scenario-versioned P/L ledger. It validates the
// scenario tag, normalizes dates to month starts and stamps the acting user
// before the set-based upsert.
type LedgerService struct {
	repo     *repositories.PlEntryRepository
	projects *repositories.ProjectRepository
}

func NewLedgerService(repo *repositories.PlEntryRepository, projects *repositories.ProjectRepository) *LedgerService {
	return &LedgerService{repo: repo, projects: projects}
}

func (s *LedgerService) List(ctx context.Context, projectID uuid.UUID, rawScenario string) ([]*models.PlEntry, error) {
	scenario, err := models.ParseScenario(rawScenario)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}

	return s.repo.FindByProject(ctx, projectID, scenario)
}

// BulkUpsert writes a batch of project-level ledger rows for one scenario.
// The whole batch lands atomically; rows already present for the same
// (account item, month) are corrected in place.
func (s *LedgerService) BulkUpsert(ctx context.Context, projectID uuid.UUID, req *models.BulkUpsertPlEntriesRequest, userID uuid.UUID) error {
	scenario, err := models.ParseScenario(req.Scenario)
	if err != nil {
		return fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return err
	}

	entries := make([]models.UpsertPlEntryParam, len(req.Entries))
	seen := make(map[string]bool, len(req.Entries))
	for i, e := range req.Entries {
		if e.AccountItemID == uuid.Nil {
			return fmt.Errorf("entry %d: account_item_id is required: %w", i, apperrors.ErrValidation)
		}
		month := timeutil.MonthStart(e.Date)
		key := e.AccountItemID.String() + month.Format(timeutil.DateLayout)
		if seen[key] {
			return fmt.Errorf("entry %d: duplicate (account item, month) pair in batch: %w", i, apperrors.ErrValidation)
		}
		seen[key] = true
		entries[i] = models.UpsertPlEntryParam{
			AccountItemID: e.AccountItemID,
			Date:          month,
			Amount:        e.Amount,
			Description:   e.Description,
		}
	}

	return s.repo.BulkUpsert(ctx, projectID, scenario, entries, userID)
}
