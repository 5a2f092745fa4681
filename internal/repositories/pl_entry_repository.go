package repositories

import (
	"context"
	"fmt"
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PlEntryRepository owns the scenario-versioned P/L ledger. Rows are created
// or corrected only through BulkUpsert; there is no per-row update or delete.
type PlEntryRepository struct {
	DB *pgxpool.Pool
}

func NewPlEntryRepository(db *pgxpool.Pool) *PlEntryRepository {
	return &PlEntryRepository{DB: db}
}

// FindByProject returns all ledger rows of a project within one scenario,
// ordered by date ascending. Job-level and project-level rows are both
// included; callers filter by job_id if they need to.
func (r *PlEntryRepository) FindByProject(ctx context.Context, projectID uuid.UUID, scenario models.Scenario) ([]*models.PlEntry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, project_id, job_id, scenario, date, account_item_id,
		        amount, description, created_by, updated_by, created_at, updated_at
		 FROM pl_entries
		 WHERE project_id = $1 AND scenario = $2
		 ORDER BY date ASC`, projectID, scenario)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.PlEntry{}
	for rows.Next() {
		var e models.PlEntry
		err := rows.Scan(&e.ID, &e.ProjectID, &e.JobID, &e.Scenario, &e.Date,
			&e.AccountItemID, &e.Amount, &e.Description,
			&e.CreatedBy, &e.UpdatedBy, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// BulkUpsert inserts or corrects project-level ledger rows (job_id NULL) for
// one scenario as a single set-based statement: either the whole batch lands
// or none of it does. On a (project, scenario, account_item, date) collision
// with an existing project-level row, amount, description and the updater
// stamp are overwritten while created_by/created_at stay from the first
// insert. The conflict target is the partial unique index scoped to
// job_id IS NULL, so job-level rows with the same tuple are untouched.
// An empty batch is a no-op without a database round trip.
func (r *PlEntryRepository) BulkUpsert(ctx context.Context, projectID uuid.UUID, scenario models.Scenario, entries []models.UpsertPlEntryParam, userID uuid.UUID) error {
	if len(entries) == 0 {
		return nil
	}

	accountItemIDs := make([]uuid.UUID, len(entries))
	dates := make([]time.Time, len(entries))
	amounts := make([]decimal.Decimal, len(entries))
	descriptions := make([]*string, len(entries))
	for i, e := range entries {
		accountItemIDs[i] = e.AccountItemID
		dates[i] = e.Date
		amounts[i] = e.Amount
		descriptions[i] = e.Description
	}

	_, err := r.DB.Exec(ctx,
		`INSERT INTO pl_entries (
		     project_id, scenario, account_item_id, date, amount, description,
		     created_by, updated_by, created_at, updated_at
		 )
		 SELECT $1, $2::scenario_type, u.account_item_id, u.date, u.amount, u.description,
		        $6, $6, NOW(), NOW()
		 FROM UNNEST(
		     $3::uuid[],
		     $4::date[],
		     $5::numeric[],
		     $7::text[]
		 ) AS u(account_item_id, date, amount, description)
		 ON CONFLICT (project_id, scenario, account_item_id, date) WHERE job_id IS NULL
		 DO UPDATE SET
		     amount = EXCLUDED.amount,
		     description = EXCLUDED.description,
		     updated_by = EXCLUDED.updated_by,
		     updated_at = CURRENT_TIMESTAMP`,
		projectID, scenario, accountItemIDs, dates, amounts, userID, descriptions)
	if err != nil {
		return fmt.Errorf("failed to bulk upsert pl entries: %w", err)
	}

	return nil
}

// CountByProject reports how many ledger rows a project has in one scenario.
func (r *PlEntryRepository) CountByProject(ctx context.Context, projectID uuid.UUID, scenario models.Scenario) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM pl_entries WHERE project_id = $1 AND scenario = $2`,
		projectID, scenario).Scan(&count)
	return count, err
}
