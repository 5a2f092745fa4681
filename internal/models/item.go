package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one month's monetary amount attached to an item. Date is always the
// first day of the month; amounts are in the smallest currency unit. Entries
// have no independent lifecycle: they are created, replaced and destroyed only
// as a batch on their parent item.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	Date      time.Time `json:"date"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is a budget line belonging to a job. An item is always read together
// with its full entry set; there is no partial-entry view.
type Item struct {
	ID          uuid.UUID  `json:"id"`
	JobID       uuid.UUID  `json:"job_id"`
	ItemTypeID  uuid.UUID  `json:"item_type_id"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Entries     []Entry    `json:"entries"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EntryInput is a (month, amount) pair supplied by the caller.
type EntryInput struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	ItemTypeID uuid.UUID    `json:"item_type_id"`
	AssigneeID *uuid.UUID   `json:"assignee_id"`
	Name       string       `json:"name"`
	Description string      `json:"description"`
	Entries    []EntryInput `json:"entries"`
}

// UpdateItemRequest carries partial fields; nil scalars leave the stored value
// unchanged. A non-nil Entries triggers a replace-all of the entry set.
// item_type_id is immutable and deliberately absent.
type UpdateItemRequest struct {
	AssigneeID  *uuid.UUID    `json:"assignee_id"`
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Entries     *[]EntryInput `json:"entries"`
}

// UpdateEntriesRequest replaces an item's entry set without touching scalars
type UpdateEntriesRequest struct {
	Entries []EntryInput `json:"entries"`
}
