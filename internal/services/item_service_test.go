package services

import (
	"context"
	"testing"
	"time"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/cache"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEntriesTruncatesToMonth(t *testing.T) {
	entries, err := normalizeEntries([]models.EntryInput{
		{Date: time.Date(2026, 4, 17, 9, 30, 0, 0, time.UTC), Amount: 500},
		{Date: time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC), Amount: 700},
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), entries[1].Date)
	assert.Equal(t, int64(500), entries[0].Amount)
}

// Two different days of the same month collapse to the same month and must be
// rejected as duplicates.
func TestNormalizeEntriesRejectsDuplicateMonth(t *testing.T) {
	_, err := normalizeEntries([]models.EntryInput{
		{Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), Amount: 1},
		{Date: time.Date(2026, 4, 28, 0, 0, 0, 0, time.UTC), Amount: 2},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNormalizeEntriesEmpty(t *testing.T) {
	entries, err := normalizeEntries(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestItemServiceCreateValidation(t *testing.T) {
	svc := NewItemService(nil, nil, cache.New("", "", 0))

	_, err := svc.Create(context.Background(), uuid.New(), &models.CreateItemRequest{
		Name:       "   ",
		ItemTypeID: uuid.New(),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create(context.Background(), uuid.New(), &models.CreateItemRequest{
		Name: "servers",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestItemServiceUpdateRejectsEmptyName(t *testing.T) {
	svc := NewItemService(nil, nil, cache.New("", "", 0))

	empty := ""
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &models.UpdateItemRequest{Name: &empty})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
