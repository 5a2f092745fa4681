package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scenario tags a planning/actuals snapshot in the P/L ledger.
// Values match the scenario_type enum in Postgres.
type Scenario string

const (
	ScenarioMasterPlan     Scenario = "MasterPlan"     // initial fiscal-year plan, fixed once set
	ScenarioRevisedPlan    Scenario = "RevisedPlan"    // mid-year revision, fixed once set
	ScenarioInitialPlan    Scenario = "InitialPlan"    // first plan of a project created after the fiscal plans
	ScenarioExecPlanAdjust Scenario = "ExecPlanAdjust" // adjustment rows when merging exec plans per project
	ScenarioJobPlan        Scenario = "JobPlan"        // job launch plan consuming the project budget
	ScenarioActual         Scenario = "Actual"         // job actuals
)

// ParseScenario validates a raw string against the closed enumeration.
func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case ScenarioMasterPlan, ScenarioRevisedPlan, ScenarioInitialPlan,
		ScenarioExecPlanAdjust, ScenarioJobPlan, ScenarioActual:
		return Scenario(s), nil
	}
	return "", fmt.Errorf("unknown scenario: %q", s)
}

// PlEntry is one row of the profit-and-loss ledger: an amount for one account
// item, one month, one scenario, scoped to a project or a project+job.
// A nil JobID means the row is project-level.
type PlEntry struct {
	ID            uuid.UUID       `json:"id"`
	ProjectID     uuid.UUID       `json:"project_id"`
	JobID         *uuid.UUID      `json:"job_id"`
	Scenario      Scenario        `json:"scenario"`
	Date          time.Time       `json:"date"`
	AccountItemID uuid.UUID       `json:"account_item_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   *string         `json:"description"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	UpdatedBy     uuid.UUID       `json:"updated_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpsertPlEntryParam is one element of a ledger bulk upsert.
type UpsertPlEntryParam struct {
	AccountItemID uuid.UUID       `json:"account_item_id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   *string         `json:"description"`
}

// BulkUpsertPlEntriesRequest represents the request body for the ledger bulk upsert
type BulkUpsertPlEntriesRequest struct {
	Scenario string               `json:"scenario"`
	Entries  []UpsertPlEntryParam `json:"entries"`
}
