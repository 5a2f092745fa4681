package utils

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"budget-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("name required: %w", apperrors.ErrValidation), 400},
		{fmt.Errorf("item x: %w", apperrors.ErrNotFound), 404},
		{errors.New("connection refused"), 500},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

// Internal errors must not leak their message to the client.
func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pq: password authentication failed"))
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRespondJSONNilPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, 204, nil)
	assert.Equal(t, 204, rec.Code)
	assert.Empty(t, rec.Body.String())
}
