package repositories

import (
	"context"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository serves the accounting reference data: accounts, item
// types and account items. All read-only.
type AccountRepository struct {
	DB *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, category, created_at, updated_at
		 FROM accounts ORDER BY category, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, &a)
	}
	return accounts, rows.Err()
}

// ListItemTypes returns all item types, optionally filtered by account.
func (r *AccountRepository) ListItemTypes(ctx context.Context, accountID *uuid.UUID) ([]*models.ItemType, error) {
	query := `SELECT id, account_id, name, created_at, updated_at FROM item_types ORDER BY id`
	args := []interface{}{}
	if accountID != nil {
		query = `SELECT id, account_id, name, created_at, updated_at
		         FROM item_types WHERE account_id = $1 ORDER BY id`
		args = append(args, *accountID)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []*models.ItemType{}
	for rows.Next() {
		var t models.ItemType
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}

func (r *AccountRepository) ListAccountItems(ctx context.Context) ([]*models.AccountItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, account_id, name, created_at, updated_at
		 FROM account_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.AccountItem{}
	for rows.Next() {
		var a models.AccountItem
		if err := rows.Scan(&a.ID, &a.AccountID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}
