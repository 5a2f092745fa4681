package services

import (
	"testing"
	"time"

	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthlyProjectionWindow(t *testing.T) {
	p := BuildMonthlyProjection(nil, month(2026, time.April))

	require.Len(t, p.Months, 12)
	assert.Equal(t, "2026-04-01", p.Months[0])
	assert.Equal(t, "2026-12-01", p.Months[8])
	// the window crosses the year boundary
	assert.Equal(t, "2027-01-01", p.Months[9])
	assert.Equal(t, "2027-03-01", p.Months[11])
	assert.Empty(t, p.Rows)
}

// An item with one entry on the third month fills exactly one of twelve cells.
func TestBuildMonthlyProjectionSparseFill(t *testing.T) {
	item := &models.Item{
		ID:   uuid.New(),
		Name: "cloud hosting",
		Entries: []models.Entry{
			{Date: month(2026, time.June), Amount: 150000},
		},
	}

	p := BuildMonthlyProjection([]*models.Item{item}, month(2026, time.April))

	require.Len(t, p.Rows, 1)
	row := p.Rows[0]
	require.Len(t, row.Amounts, 12)
	for i, amount := range row.Amounts {
		if i == 2 {
			assert.Equal(t, int64(150000), amount)
		} else {
			assert.Zero(t, amount, "month %s", p.Months[i])
		}
	}
}

func TestBuildMonthlyProjectionIgnoresOutOfWindow(t *testing.T) {
	item := &models.Item{
		ID:   uuid.New(),
		Name: "licences",
		Entries: []models.Entry{
			{Date: month(2026, time.March), Amount: 999},  // month before the window
			{Date: month(2027, time.April), Amount: 888},  // month after the window
			{Date: month(2026, time.April), Amount: 1000}, // first month
		},
	}

	p := BuildMonthlyProjection([]*models.Item{item}, month(2026, time.April))

	require.Len(t, p.Rows, 1)
	assert.Equal(t, int64(1000), p.Rows[0].Amounts[0])
	var total int64
	for _, a := range p.Rows[0].Amounts {
		total += a
	}
	assert.Equal(t, int64(1000), total)
}

// Two entries in the same month sum deterministically.
func TestBuildMonthlyProjectionSumsDuplicateMonths(t *testing.T) {
	item := &models.Item{
		ID:   uuid.New(),
		Name: "contractors",
		Entries: []models.Entry{
			{Date: month(2026, time.May), Amount: 100},
			{Date: month(2026, time.May), Amount: 250},
		},
	}

	p := BuildMonthlyProjection([]*models.Item{item}, month(2026, time.April))

	require.Len(t, p.Rows, 1)
	assert.Equal(t, int64(350), p.Rows[0].Amounts[1])
}

func TestBuildMonthlyProjectionRowPerItem(t *testing.T) {
	items := []*models.Item{
		{ID: uuid.New(), Name: "a"},
		{ID: uuid.New(), Name: "b"},
		{ID: uuid.New(), Name: "c"},
	}

	p := BuildMonthlyProjection(items, month(2026, time.April))

	require.Len(t, p.Rows, 3)
	for i, row := range p.Rows {
		assert.Equal(t, items[i].ID, row.ItemID)
		assert.Equal(t, items[i].Name, row.Name)
		assert.Len(t, row.Amounts, 12)
	}
}

func TestNewReportServiceRejectsBadStartMonth(t *testing.T) {
	_, err := NewReportService(nil, nil, "not-a-date")
	assert.Error(t, err)

	svc, err := NewReportService(nil, nil, "2026-04-01")
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
