package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

func TestDisplayAmount(t *testing.T) {
	tests := []struct {
		name     string
		coins    int64
		rate     string
		expected string
	}{
		{name: "whole rate", coins: 120, rate: "1", expected: "120"},
		{name: "cents per coin", coins: 120, rate: "0.1", expected: "12"},
		{name: "rounds to cents", coins: 3, rate: "0.333", expected: "1"},
		{name: "no float drift", coins: 3, rate: "0.1", expected: "0.3"},
		{name: "zero balance", coins: 0, rate: "0.25", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayAmount(tt.coins, decimal.RequireFromString(tt.rate))
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestNewTransactionsResponse(t *testing.T) {
	decided := time.Now()
	txns := []domain.Transaction{
		{ID: uuid.New(), Type: domain.TransactionFunding, AmountCoins: 100, Status: domain.TransactionApproved, DecidedAt: &decided},
		{ID: uuid.New(), Type: domain.TransactionAccessFeeDebit, AmountCoins: 10, Status: domain.TransactionApproved, Reference: "i1"},
	}

	out := NewTransactionsResponse(txns)
	assert.Len(t, out, 2)
	assert.Equal(t, "FUNDING", out[0].Type)
	assert.Equal(t, &decided, out[0].DecidedAt)
	assert.Equal(t, "i1", out[1].Reference)

	assert.NotNil(t, NewTransactionsResponse(nil))
}

func TestNewQuotesResponse(t *testing.T) {
	q := domain.Quote{ID: uuid.New(), Price: 2500, Status: domain.QuotePending}
	out := NewQuotesResponse([]domain.Quote{q})
	assert.Equal(t, []QuoteResponseDTO{{ID: q.ID, Price: 2500, Status: "PENDING"}}, out)
	assert.Empty(t, NewInterestsResponse(nil))
}
