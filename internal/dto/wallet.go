package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

// DisplayAmount converts coins to the display currency at rate units per
// coin, rounded to cents. The ledger itself only ever holds whole coins.
func DisplayAmount(coins int64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(coins).Mul(rate).Round(2)
}

type BalanceResponseDTO struct {
	BalanceCoins int64           `json:"balance_coins" example:"120"`
	Display      decimal.Decimal `json:"display_amount" swaggertype:"string" example:"12.00"`
}

func NewBalanceResponse(coins int64, rate decimal.Decimal) BalanceResponseDTO {
	return BalanceResponseDTO{BalanceCoins: coins, Display: DisplayAmount(coins, rate)}
}

type AmountRequestDTO struct {
	AmountCoins int64 `json:"amount_coins" example:"100"`
}

type TransactionResponseDTO struct {
	ID          uuid.UUID  `json:"id" example:"6f1c1c64-3d5c-4e51-8b8e-0d6a3c9a2f10"`
	Type        string     `json:"type" example:"ACCESS_FEE_DEBIT"`
	AmountCoins int64      `json:"amount_coins" example:"10"`
	Status      string     `json:"status" example:"APPROVED"`
	Reference   string     `json:"reference,omitempty" example:"2b1f0c9e-8a57-4b8e-9d0c-5f2e3a4b6c7d"`
	CreatedAt   time.Time  `json:"created_at" example:"2024-05-01T12:00:00Z"`
	DecidedAt   *time.Time `json:"decided_at,omitempty" example:"2024-05-01T12:00:00Z"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID,
		Type:        string(t.Type),
		AmountCoins: t.AmountCoins,
		Status:      string(t.Status),
		Reference:   t.Reference,
		CreatedAt:   t.CreatedAt,
		DecidedAt:   t.DecidedAt,
	}
}

func NewTransactionsResponse(txns []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, 0, len(txns))
	for i := range txns {
		out = append(out, NewTransactionResponse(&txns[i]))
	}
	return out
}

type FundingDecisionResponseDTO struct {
	Transaction TransactionResponseDTO `json:"transaction"`
	Replayed    bool                   `json:"replayed" example:"false"`
}
