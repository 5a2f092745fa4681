package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Integration tests run against a migrated Postgres database named by
// TEST_DATABASE_URL and are skipped otherwise.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

type fixtures struct {
	UserID        uuid.UUID
	ProjectID     uuid.UUID
	JobID         uuid.UUID
	AccountID     uuid.UUID
	ItemTypeID    uuid.UUID
	AccountItemID uuid.UUID
}

// createFixtures inserts the reference chain a test needs (user, project, job,
// account, item type, account item) and tears everything down afterwards.
func createFixtures(t *testing.T, pool *pgxpool.Pool) fixtures {
	t.Helper()
	ctx := context.Background()
	f := fixtures{}

	email := fmt.Sprintf("test-%s@example.com", uuid.New())
	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name) VALUES ($1, 'x', 'test user') RETURNING id`,
		email).Scan(&f.UserID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx,
		`INSERT INTO projects (name, description, created_by) VALUES ('test project', '', $1) RETURNING id`,
		f.UserID).Scan(&f.ProjectID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx,
		`INSERT INTO jobs (project_id, name, description, business_model)
		 VALUES ($1, 'test job', '', 'contract') RETURNING id`,
		f.ProjectID).Scan(&f.JobID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx,
		`INSERT INTO accounts (name, category) VALUES ('test account', 'sales') RETURNING id`).Scan(&f.AccountID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx,
		`INSERT INTO item_types (account_id, name) VALUES ($1, 'test item type') RETURNING id`,
		f.AccountID).Scan(&f.ItemTypeID)
	require.NoError(t, err)

	err = pool.QueryRow(ctx,
		`INSERT INTO account_items (account_id, name) VALUES ($1, 'test account item') RETURNING id`,
		f.AccountID).Scan(&f.AccountItemID)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx := context.Background()
		pool.Exec(ctx, `DELETE FROM pl_entries WHERE project_id = $1`, f.ProjectID)
		pool.Exec(ctx, `DELETE FROM entries WHERE item_id IN (SELECT id FROM items WHERE job_id = $1)`, f.JobID)
		pool.Exec(ctx, `DELETE FROM items WHERE job_id = $1`, f.JobID)
		pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, f.JobID)
		pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, f.ProjectID)
		pool.Exec(ctx, `DELETE FROM account_items WHERE id = $1`, f.AccountItemID)
		pool.Exec(ctx, `DELETE FROM item_types WHERE id = $1`, f.ItemTypeID)
		pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, f.AccountID)
		pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, f.UserID)
	})

	return f
}
