package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountCategory matches the account_category enum in Postgres.
type AccountCategory string

const (
	AccountCategorySales       AccountCategory = "sales"
	AccountCategoryCostOfSales AccountCategory = "cost_of_sales"
	AccountCategorySga         AccountCategory = "sga"
)

// Account is an accounting classification (sales, cost of sales, SG&A).
type Account struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  AccountCategory `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ItemType is a concrete expense/revenue category under an account,
// used to classify budget line items.
type ItemType struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountItem is the classification unit P/L ledger rows reference.
type AccountItem struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
