package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusCreated, map[string]int{"balance": 5})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"balance":5}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusBadRequest, "invalid request body")

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, Response{Status: "error", Message: "invalid request body"}, resp)
}

func TestRespondWithDomainError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
		expectedKind string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not found", "not_found"},
		{"wrapped wrong status", fmt.Errorf("accept: %w", domain.ErrWrongStatus), http.StatusConflict, "invalid status transition", "wrong_status"},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict, "interest already exists", "already_exists"},
		{"already quoted", domain.ErrAlreadyQuoted, http.StatusConflict, "quote already submitted", "already_quoted"},
		{"already paid", domain.ErrAlreadyPaid, http.StatusConflict, "access fee already paid", "already_paid"},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient funds", "insufficient_funds"},
		{"quote limit", domain.ErrQuoteLimitReached, http.StatusConflict, "quote limit reached", "quote_limit_reached"},
		{"job not active", domain.ErrJobNotActive, http.StatusConflict, "job is not active", "job_not_active"},
		{"job expired", domain.ErrJobExpired, http.StatusGone, "job has expired", "job_expired"},
		{"not authorized", domain.ErrNotAuthorized, http.StatusForbidden, "not authorized", "not_authorized"},
		{"category mismatch", domain.ErrCategoryMismatch, http.StatusUnprocessableEntity, "provider category does not match job", "category_mismatch"},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusUnprocessableEntity, "amount must be positive", "invalid_amount"},
		{"invalid type", domain.ErrInvalidTransactionType, http.StatusUnprocessableEntity, "invalid transaction type", "invalid_transaction_type"},
		{"transient", fmt.Errorf("%w: deadlock", domain.ErrTransient), http.StatusServiceUnavailable, "Service temporarily unavailable", "transient"},
		{"commit unknown", domain.ErrCommitUnknown, http.StatusInternalServerError, "Outcome unknown, queued for reconciliation", "commit_unknown"},
		{"internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error", "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithDomainError(w, tt.err)

			var resp Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, tt.expectedKind, resp.Kind)
		})
	}
}
