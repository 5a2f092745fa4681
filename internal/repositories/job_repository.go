package repositories

import (
	"context"
	"errors"
	"fmt"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobRepository struct {
	DB *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) Create(ctx context.Context, projectID uuid.UUID, name, description string, businessModel models.BusinessModel) (*models.Job, error) {
	var j models.Job
	err := r.DB.QueryRow(ctx,
		`INSERT INTO jobs (project_id, name, description, business_model)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, project_id, name, description, business_model, created_at, updated_at`,
		projectID, name, description, businessModel,
	).Scan(&j.ID, &j.ProjectID, &j.Name, &j.Description, &j.BusinessModel, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.Job, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, project_id, name, description, business_model, created_at, updated_at
		 FROM jobs WHERE project_id = $1 ORDER BY created_at`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		var j models.Job
		err := rows.Scan(&j.ID, &j.ProjectID, &j.Name, &j.Description, &j.BusinessModel, &j.CreatedAt, &j.UpdatedAt)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, &j)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var j models.Job
	err := r.DB.QueryRow(ctx,
		`SELECT id, project_id, name, description, business_model, created_at, updated_at
		 FROM jobs WHERE id = $1`, id,
	).Scan(&j.ID, &j.ProjectID, &j.Name, &j.Description, &j.BusinessModel, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("job %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Update applies a partial update scoped by (id, project_id); nil fields keep
// their stored value.
func (r *JobRepository) Update(ctx context.Context, id, projectID uuid.UUID, name, description *string, businessModel *models.BusinessModel) (*models.Job, error) {
	var j models.Job
	err := r.DB.QueryRow(ctx,
		`UPDATE jobs
		 SET name = COALESCE($1, name),
		     description = COALESCE($2, description),
		     business_model = COALESCE($3::business_model_type, business_model),
		     updated_at = NOW()
		 WHERE id = $4 AND project_id = $5
		 RETURNING id, project_id, name, description, business_model, created_at, updated_at`,
		name, description, businessModel, id, projectID,
	).Scan(&j.ID, &j.ProjectID, &j.Name, &j.Description, &j.BusinessModel, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("job %s in project %s: %w", id, projectID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Delete removes a job scoped by (id, project_id) and returns the affected
// row count so the caller can distinguish not-found from success.
func (r *JobRepository) Delete(ctx context.Context, id, projectID uuid.UUID) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND project_id = $2`, id, projectID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
