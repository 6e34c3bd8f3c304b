package wallet

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/dto"
	"github.com/GlebRadaev/jobmart/pkg/auth"
	"github.com/GlebRadaev/jobmart/pkg/utils"
)

type Service interface {
	Balance(ctx context.Context, accountID uuid.UUID) (int64, error)
	History(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error)
	RequestFunding(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error)
	WithdrawFunds(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
	rate          decimal.Decimal
}

func New(walletService Service, rate decimal.Decimal) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		rate:          rate,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Returns the coin balance and its display amount. A wallet that was never funded has a zero balance.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	coins, err := h.walletService.Balance(r.Context(), accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(coins, h.rate))
}

// History godoc
//
//	@Summary		Get wallet history
//	@Description	Lists every ledger transaction of the caller, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) History(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	txns, err := h.walletService.History(r.Context(), accountID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponse(txns))
}

// RequestFunding godoc
//
//	@Summary		Request wallet funding
//	@Description	Creates a PENDING funding that credits the wallet once an admin approves it.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount in coins"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		422		{object}	utils.Response	"Amount must be positive"
//	@Router			/api/wallet/funding [post]
func (h *WalletHandler) RequestFunding(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.walletService.RequestFunding(r.Context(), accountID, req.AmountCoins)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(txn))
}

// Withdraw godoc
//
//	@Summary		Withdraw coins
//	@Description	Debits the wallet. Fails when the balance does not cover the amount.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount in coins"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		422		{object}	utils.Response	"Amount must be positive"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	txn, err := h.walletService.WithdrawFunds(r.Context(), accountID, req.AmountCoins)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(txn))
}
