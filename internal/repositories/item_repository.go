package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepository owns items and their entry sets. An item's entries are only
// ever written as a whole batch; every mutation here is a single transaction,
// so a concurrent reader observes either the old or the new entry set, never a
// mix.
type ItemRepository struct {
	DB *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{DB: db}
}

// Create inserts the item row and its initial entries in one transaction and
// returns the fully hydrated item.
func (r *ItemRepository) Create(ctx context.Context, jobID, itemTypeID uuid.UUID, assigneeID *uuid.UUID, name, description string, entries []models.EntryInput) (*models.Item, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	item := &models.Item{
		JobID:       jobID,
		ItemTypeID:  itemTypeID,
		AssigneeID:  assigneeID,
		Name:        name,
		Description: description,
		Entries:     []models.Entry{},
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO items (job_id, item_type_id, assignee_id, name, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		jobID, itemTypeID, assigneeID, name, description,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	for _, e := range entries {
		var entry models.Entry
		err = tx.QueryRow(ctx,
			`INSERT INTO entries (item_id, date, amount)
			 VALUES ($1, $2, $3)
			 RETURNING id, item_id, date, amount, created_at, updated_at`,
			item.ID, e.Date, e.Amount,
		).Scan(&entry.ID, &entry.ItemID, &entry.Date, &entry.Amount, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert entry: %w", err)
		}
		item.Entries = append(item.Entries, entry)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return item, nil
}

// FindByJobID loads all items of a job with their entries. Entries are fetched
// in one batched query and associated in memory to avoid N+1 round trips.
// Items are ordered by creation time, entries within an item by date.
func (r *ItemRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) ([]*models.Item, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, job_id, item_type_id, assignee_id, name, description, created_at, updated_at
		 FROM items WHERE job_id = $1 ORDER BY created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	byID := make(map[uuid.UUID]*models.Item)
	for rows.Next() {
		var item models.Item
		err := rows.Scan(&item.ID, &item.JobID, &item.ItemTypeID, &item.AssigneeID,
			&item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		item.Entries = []models.Entry{}
		items = append(items, &item)
		byID[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return []*models.Item{}, nil
	}

	itemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	entryRows, err := r.DB.Query(ctx,
		`SELECT id, item_id, date, amount, created_at, updated_at
		 FROM entries
		 WHERE item_id = ANY($1)
		 ORDER BY date`, itemIDs)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var entry models.Entry
		err := entryRows.Scan(&entry.ID, &entry.ItemID, &entry.Date, &entry.Amount,
			&entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if item, ok := byID[entry.ItemID]; ok {
			item.Entries = append(item.Entries, entry)
		}
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Get loads a single item with its full entry set.
func (r *ItemRepository) Get(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.DB.QueryRow(ctx,
		`SELECT id, job_id, item_type_id, assignee_id, name, description, created_at, updated_at
		 FROM items WHERE id = $1`, itemID,
	).Scan(&item.ID, &item.JobID, &item.ItemTypeID, &item.AssigneeID,
		&item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", itemID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	item.Entries = []models.Entry{}
	rows, err := r.DB.Query(ctx,
		`SELECT id, item_id, date, amount, created_at, updated_at
		 FROM entries WHERE item_id = $1 ORDER BY date`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.Entry
		err := rows.Scan(&entry.ID, &entry.ItemID, &entry.Date, &entry.Amount,
			&entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, err
		}
		item.Entries = append(item.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &item, nil
}

// Update applies a partial scalar update scoped by (item_id, job_id); nil
// fields keep their stored value and item_type_id is immutable. When entries
// is non-nil the whole entry set is replaced (delete-then-insert) inside the
// same transaction. Returns ErrNotFound if the item does not belong to the job.
//
// Two concurrent replace-alls on the same item serialize on the scalar row
// update; the later commit wins with its complete entry list.
func (r *ItemRepository) Update(ctx context.Context, itemID, jobID uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE items
		 SET assignee_id = COALESCE($1, assignee_id),
		     name = COALESCE($2, name),
		     description = COALESCE($3, description),
		     updated_at = NOW()
		 WHERE id = $4 AND job_id = $5`,
		req.AssigneeID, req.Name, req.Description, itemID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("item %s in job %s: %w", itemID, jobID, apperrors.ErrNotFound)
	}

	if req.Entries != nil {
		if err := replaceEntries(ctx, tx, itemID, *req.Entries); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.Get(ctx, itemID)
}

// UpdateEntries replaces an item's entry set without touching scalar fields.
func (r *ItemRepository) UpdateEntries(ctx context.Context, itemID uuid.UUID, entries []models.EntryInput) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := replaceEntries(ctx, tx, itemID, entries); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes the item and its entries in one transaction, scoped by
// (item_id, job_id). Returns the number of deleted items: 0 means the item did
// not exist under that job and nothing was touched.
func (r *ItemRepository) Delete(ctx context.Context, itemID, jobID uuid.UUID) (int64, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Scope the entry delete by job as well, so a wrong job_id touches nothing.
	_, err = tx.Exec(ctx,
		`DELETE FROM entries
		 WHERE item_id IN (SELECT id FROM items WHERE id = $1 AND job_id = $2)`,
		itemID, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM items WHERE id = $1 AND job_id = $2`, itemID, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tag.RowsAffected(), nil
}

// replaceEntries deletes every entry of the item and inserts the new set with
// one set-based statement.
func replaceEntries(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, entries []models.EntryInput) error {
	if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	dates := make([]time.Time, len(entries))
	amounts := make([]int64, len(entries))
	for i, e := range entries {
		dates[i] = e.Date
		amounts[i] = e.Amount
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO entries (item_id, date, amount)
		 SELECT $1, u.date, u.amount
		 FROM UNNEST($2::date[], $3::bigint[]) AS u(date, amount)`,
		itemID, dates, amounts)
	if err != nil {
		return fmt.Errorf("failed to insert entries: %w", err)
	}
	return nil
}
