package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	for _, raw := range []string{
		"MasterPlan", "RevisedPlan", "InitialPlan",
		"ExecPlanAdjust", "JobPlan", "Actual",
	} {
		s, err := ParseScenario(raw)
		require.NoError(t, err)
		assert.Equal(t, Scenario(raw), s)
	}
}

func TestParseScenarioRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "masterplan", "Forecast"} {
		_, err := ParseScenario(raw)
		assert.Error(t, err, "scenario %q", raw)
	}
}
