package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthStart(t *testing.T) {
	in := time.Date(2026, 4, 17, 13, 45, 12, 0, JST)
	got := MonthStart(in)

	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthStartIdempotent(t *testing.T) {
	first := MonthStart(time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, first, MonthStart(first))
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2026-04-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseMonth("April 2026")
	assert.Error(t, err)
}
