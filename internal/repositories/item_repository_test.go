package repositories

import (
	"context"
	"testing"
	"time"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthDate(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// After a replace-all update a reader sees exactly the new entry set, never a
// mix of old and new.
func TestItemReplaceAllAtomicity(t *testing.T) {
	pool := testPool(t)
	f := createFixtures(t, pool)
	repo := NewItemRepository(pool)
	ctx := context.Background()

	item, err := repo.Create(ctx, f.JobID, f.ItemTypeID, nil, "hosting", "",
		[]models.EntryInput{
			{Date: monthDate(2026, time.April), Amount: 100},
			{Date: monthDate(2026, time.May), Amount: 200},
		})
	require.NoError(t, err)
	require.Len(t, item.Entries, 2)

	newEntries := []models.EntryInput{
		{Date: monthDate(2026, time.June), Amount: 300},
	}
	updated, err := repo.Update(ctx, item.ID, f.JobID, &models.UpdateItemRequest{Entries: &newEntries})
	require.NoError(t, err)

	require.Len(t, updated.Entries, 1)
	assert.Equal(t, monthDate(2026, time.June), updated.Entries[0].Date.UTC())
	assert.Equal(t, int64(300), updated.Entries[0].Amount)
}

// A failed replace-all must leave the original entry set intact.
func TestItemReplaceAllRollsBackOnFailure(t *testing.T) {
	pool := testPool(t)
	f := createFixtures(t, pool)
	repo := NewItemRepository(pool)
	ctx := context.Background()

	item, err := repo.Create(ctx, f.JobID, f.ItemTypeID, nil, "licences", "",
		[]models.EntryInput{{Date: monthDate(2026, time.April), Amount: 100}})
	require.NoError(t, err)

	// Duplicate months violate the (item_id, date) uniqueness on entries and
	// abort the insert half of the replace.
	bad := []models.EntryInput{
		{Date: monthDate(2026, time.May), Amount: 1},
		{Date: monthDate(2026, time.May), Amount: 2},
	}
	_, err = repo.Update(ctx, item.ID, f.JobID, &models.UpdateItemRequest{Entries: &bad})
	require.Error(t, err)

	current, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, current.Entries, 1)
	assert.Equal(t, int64(100), current.Entries[0].Amount)
}

// Mutations under the wrong job id touch nothing.
func TestItemScopedMutations(t *testing.T) {
	pool := testPool(t)
	f := createFixtures(t, pool)
	repo := NewItemRepository(pool)
	ctx := context.Background()

	item, err := repo.Create(ctx, f.JobID, f.ItemTypeID, nil, "travel", "",
		[]models.EntryInput{{Date: monthDate(2026, time.April), Amount: 500}})
	require.NoError(t, err)

	wrongJob := uuid.New()
	name := "renamed"
	_, err = repo.Update(ctx, item.ID, wrongJob, &models.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	deleted, err := repo.Delete(ctx, item.ID, wrongJob)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	current, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "travel", current.Name)
	assert.Len(t, current.Entries, 1)
}

func TestItemLifecycleEndToEnd(t *testing.T) {
	pool := testPool(t)
	f := createFixtures(t, pool)
	repo := NewItemRepository(pool)
	ctx := context.Background()

	item, err := repo.Create(ctx, f.JobID, f.ItemTypeID, nil, "development", "",
		[]models.EntryInput{
			{Date: monthDate(2026, time.January), Amount: 1_000_000},
			{Date: monthDate(2026, time.February), Amount: 2_000_000},
		})
	require.NoError(t, err)

	items, err := repo.FindByJobID(ctx, f.JobID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Entries, 2)
	assert.Equal(t, int64(3_000_000), items[0].Entries[0].Amount+items[0].Entries[1].Amount)

	replacement := []models.EntryInput{{Date: monthDate(2026, time.February), Amount: 2000}}
	_, err = repo.Update(ctx, item.ID, f.JobID, &models.UpdateItemRequest{Entries: &replacement})
	require.NoError(t, err)

	items, err = repo.FindByJobID(ctx, f.JobID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Entries, 1)
	assert.Equal(t, int64(2000), items[0].Entries[0].Amount)

	deleted, err := repo.Delete(ctx, item.ID, f.JobID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	items, err = repo.FindByJobID(ctx, f.JobID)
	require.NoError(t, err)
	assert.Empty(t, items)

	var count int
	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM entries WHERE item_id = $1`, item.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestItemFindByJobIDEmpty(t *testing.T) {
	pool := testPool(t)
	f := createFixtures(t, pool)
	repo := NewItemRepository(pool)

	items, err := repo.FindByJobID(context.Background(), f.JobID)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
