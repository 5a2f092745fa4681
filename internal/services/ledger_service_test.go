package services

import (
	"context"
	"testing"

	"budget-backend/internal/apperrors"
	"budget-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLedgerServiceRejectsUnknownScenario(t *testing.T) {
	svc := NewLedgerService(nil, nil)

	_, err := svc.List(context.Background(), uuid.New(), "Forecast")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = svc.BulkUpsert(context.Background(), uuid.New(), &models.BulkUpsertPlEntriesRequest{
		Scenario: "bogus",
	}, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
