package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BusinessModel classifies how a job earns (or spends) money.
// Values match the business_model_type enum in Postgres.
type BusinessModel string

const (
	BusinessModelContract BusinessModel = "contract"
	BusinessModelSes      BusinessModel = "ses"
	BusinessModelSaas     BusinessModel = "saas"
	BusinessModelMedia    BusinessModel = "media"
	BusinessModelInternal BusinessModel = "internal"
	BusinessModelRnd      BusinessModel = "rnd"
)

// RevenueType is the derived three-way classification of a BusinessModel.
// It is computed on demand and never stored.
type RevenueType string

const (
	RevenueTypeFlow     RevenueType = "flow"
	RevenueTypeStock    RevenueType = "stock"
	RevenueTypeInternal RevenueType = "internal"
)

// ParseBusinessModel validates a raw string against the closed enumeration.
func ParseBusinessModel(s string) (BusinessModel, error) {
	switch BusinessModel(s) {
	case BusinessModelContract, BusinessModelSes, BusinessModelSaas,
		BusinessModelMedia, BusinessModelRnd, BusinessModelInternal:
		return BusinessModel(s), nil
	}
	return "", fmt.Errorf("unknown business model: %q", s)
}

// RevenueType maps a business model to its revenue structure:
// contract/ses are flow revenue, saas/media are stock revenue,
// internal/rnd carry no external revenue.
func (m BusinessModel) RevenueType() RevenueType {
	switch m {
	case BusinessModelContract, BusinessModelSes:
		return RevenueTypeFlow
	case BusinessModelSaas, BusinessModelMedia:
		return RevenueTypeStock
	default:
		return RevenueTypeInternal
	}
}

type Job struct {
	ID            uuid.UUID     `json:"id"`
	ProjectID     uuid.UUID     `json:"project_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	BusinessModel BusinessModel `json:"business_model"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CreateJobRequest represents the request body for creating a job
type CreateJobRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	BusinessModel string `json:"business_model"`
}

// UpdateJobRequest carries partial fields; nil leaves the stored value unchanged
type UpdateJobRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	BusinessModel *string `json:"business_model"`
}
