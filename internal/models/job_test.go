package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueTypeMapping(t *testing.T) {
	cases := map[BusinessModel]RevenueType{
		BusinessModelContract: RevenueTypeFlow,
		BusinessModelSes:      RevenueTypeFlow,
		BusinessModelSaas:     RevenueTypeStock,
		BusinessModelMedia:    RevenueTypeStock,
		BusinessModelInternal: RevenueTypeInternal,
		BusinessModelRnd:      RevenueTypeInternal,
	}

	for model, want := range cases {
		assert.Equal(t, want, model.RevenueType(), "business model %s", model)
	}
}

// Every parseable business model must classify; the mapping has no gap.
func TestRevenueTypeTotality(t *testing.T) {
	for _, raw := range []string{"contract", "ses", "saas", "media", "internal", "rnd"} {
		model, err := ParseBusinessModel(raw)
		require.NoError(t, err)
		assert.NotEmpty(t, model.RevenueType())
	}
}

func TestParseBusinessModelRejectsUnknown(t *testing.T) {
	_, err := ParseBusinessModel("franchise")
	assert.Error(t, err)

	// enum values are lowercase
	_, err = ParseBusinessModel("Contract")
	assert.Error(t, err)
}
