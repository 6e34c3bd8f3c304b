package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTxManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := NewMockTxManager(ctrl)
	service := New(repo, txManager)
	return service, repo, txManager
}

func passThrough(txManager *MockTxManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestDebit(t *testing.T) {
	service, repo, _ := NewMock(t)
	accountID := uuid.New()

	tests := []struct {
		name          string
		req           domain.DebitRequest
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Access fee debit",
			req: domain.DebitRequest{
				AccountID:      accountID,
				Amount:         10,
				Type:           domain.TransactionAccessFeeDebit,
				Reference:      "interest-1",
				IdempotencyKey: "key-1",
			},
			prepareMock: func() {
				repo.EXPECT().Debit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, accountID, txn.AccountID)
						assert.Equal(t, int64(10), txn.AmountCoins)
						assert.Equal(t, domain.TransactionApproved, txn.Status)
						assert.Equal(t, "interest-1", txn.Reference)
						assert.Equal(t, "key-1", txn.IdempotencyKey)
						return txn, nil
					})
			},
		},
		{
			name: "Insufficient funds",
			req:  domain.DebitRequest{AccountID: accountID, Amount: 10, Type: domain.TransactionWithdrawal},
			prepareMock: func() {
				repo.EXPECT().Debit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:          "Zero amount",
			req:           domain.DebitRequest{AccountID: accountID, Amount: 0, Type: domain.TransactionWithdrawal},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			req:           domain.DebitRequest{AccountID: accountID, Amount: -5, Type: domain.TransactionWithdrawal},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Credit type refused",
			req:           domain.DebitRequest{AccountID: accountID, Amount: 5, Type: domain.TransactionFunding},
			expectedError: domain.ErrInvalidTransactionType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			txn, err := service.Debit(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, txn.ID)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, repo, _ := NewMock(t)
	accountID := uuid.New()

	tests := []struct {
		name           string
		typ            domain.TransactionType
		amount         int64
		prepareMock    func()
		expectedStatus domain.TransactionStatus
		expectedError  error
	}{
		{
			name:   "Funding is created pending",
			typ:    domain.TransactionFunding,
			amount: 100,
			prepareMock: func() {
				repo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						return txn, nil
					})
			},
			expectedStatus: domain.TransactionPending,
		},
		{
			name:   "Referral credit is applied",
			typ:    domain.TransactionReferralCredit,
			amount: 5,
			prepareMock: func() {
				repo.EXPECT().Credit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						return txn, nil
					})
			},
			expectedStatus: domain.TransactionApproved,
		},
		{
			name:          "Debit type refused",
			typ:           domain.TransactionAccessFeeDebit,
			amount:        5,
			expectedError: domain.ErrInvalidTransactionType,
		},
		{
			name:          "Zero amount",
			typ:           domain.TransactionFunding,
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:   "Repository failure",
			typ:    domain.TransactionReferralCredit,
			amount: 5,
			prepareMock: func() {
				repo.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			txn, err := service.Credit(context.Background(), accountID, tt.amount, tt.typ)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, txn.Status)
				assert.Equal(t, tt.typ, txn.Type)
			}
		})
	}
}

func TestApproveFunding(t *testing.T) {
	service, repo, txManager := NewMock(t)
	txID := uuid.New()
	accountID := uuid.New()
	now := time.Now()
	service.now = func() time.Time { return now }

	funding := func(status domain.TransactionStatus) *domain.Transaction {
		return &domain.Transaction{ID: txID, AccountID: accountID, Type: domain.TransactionFunding, AmountCoins: 100, Status: status}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
		replayed      bool
	}{
		{
			name: "Pending funding is credited",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockTransaction(gomock.Any(), txID).Return(funding(domain.TransactionPending), nil)
				approved := funding(domain.TransactionApproved)
				approved.DecidedAt = &now
				repo.EXPECT().DecideTransaction(gomock.Any(), txID, domain.TransactionApproved, now).Return(approved, nil)
				repo.EXPECT().AddBalance(gomock.Any(), accountID, int64(100)).Return(nil)
			},
		},
		{
			name: "Second approval credits nothing",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockTransaction(gomock.Any(), txID).Return(funding(domain.TransactionApproved), nil)
			},
			replayed: true,
		},
		{
			name: "Rejected funding cannot be approved",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockTransaction(gomock.Any(), txID).Return(funding(domain.TransactionRejected), nil)
			},
			expectedError: domain.ErrWrongStatus,
		},
		{
			name: "Not a funding transaction",
			prepareMock: func() {
				passThrough(txManager)
				txn := funding(domain.TransactionApproved)
				txn.Type = domain.TransactionAccessFeeDebit
				repo.EXPECT().LockTransaction(gomock.Any(), txID).Return(txn, nil)
			},
			expectedError: domain.ErrInvalidTransactionType,
		},
		{
			name: "Missing transaction",
			prepareMock: func() {
				passThrough(txManager)
				repo.EXPECT().LockTransaction(gomock.Any(), txID).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.ApproveFunding(context.Background(), txID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TransactionApproved, result.Transaction.Status)
				assert.Equal(t, tt.replayed, result.Replayed)
			}
		})
	}
}

func TestRejectFunding(t *testing.T) {
	service, repo, txManager := NewMock(t)
	txID := uuid.New()
	now := time.Now()
	service.now = func() time.Time { return now }

	t.Run("Pending funding is rejected without credit", func(t *testing.T) {
		passThrough(txManager)
		repo.EXPECT().LockTransaction(gomock.Any(), txID).
			Return(&domain.Transaction{ID: txID, Type: domain.TransactionFunding, Status: domain.TransactionPending}, nil)
		repo.EXPECT().DecideTransaction(gomock.Any(), txID, domain.TransactionRejected, now).
			Return(&domain.Transaction{ID: txID, Type: domain.TransactionFunding, Status: domain.TransactionRejected, DecidedAt: &now}, nil)

		result, err := service.RejectFunding(context.Background(), txID)
		assert.NoError(t, err)
		assert.Equal(t, domain.TransactionRejected, result.Transaction.Status)
		assert.False(t, result.Replayed)
	})

	t.Run("Rejecting twice is a no-op", func(t *testing.T) {
		passThrough(txManager)
		repo.EXPECT().LockTransaction(gomock.Any(), txID).
			Return(&domain.Transaction{ID: txID, Type: domain.TransactionFunding, Status: domain.TransactionRejected}, nil)

		result, err := service.RejectFunding(context.Background(), txID)
		assert.NoError(t, err)
		assert.True(t, result.Replayed)
	})

	t.Run("Approved funding cannot be rejected", func(t *testing.T) {
		passThrough(txManager)
		repo.EXPECT().LockTransaction(gomock.Any(), txID).
			Return(&domain.Transaction{ID: txID, Type: domain.TransactionFunding, Status: domain.TransactionApproved}, nil)

		_, err := service.RejectFunding(context.Background(), txID)
		assert.ErrorIs(t, err, domain.ErrWrongStatus)
	})
}

func TestBalance(t *testing.T) {
	service, repo, _ := NewMock(t)
	accountID := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		expected      int64
		expectedError error
	}{
		{
			name: "Existing wallet",
			prepareMock: func() {
				repo.EXPECT().GetWallet(gomock.Any(), accountID).Return(&domain.Wallet{AccountID: accountID, BalanceCoins: 42}, nil)
			},
			expected: 42,
		},
		{
			name: "Missing wallet reads as zero",
			prepareMock: func() {
				repo.EXPECT().GetWallet(gomock.Any(), accountID).Return(nil, nil)
			},
		},
		{
			name: "Repository failure",
			prepareMock: func() {
				repo.EXPECT().GetWallet(gomock.Any(), accountID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.Balance(context.Background(), accountID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, balance)
		})
	}
}

func TestWithdraw(t *testing.T) {
	service, repo, _ := NewMock(t)
	accountID := uuid.New()

	repo.EXPECT().Debit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, domain.TransactionWithdrawal, txn.Type)
			return txn, nil
		})

	txn, err := service.Withdraw(context.Background(), accountID, 30)
	assert.NoError(t, err)
	assert.Equal(t, int64(30), txn.AmountCoins)
}

func TestHistory(t *testing.T) {
	service, repo, _ := NewMock(t)
	accountID := uuid.New()
	expected := []domain.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}

	repo.EXPECT().ListTransactions(gomock.Any(), accountID).Return(expected, nil)

	history, err := service.History(context.Background(), accountID)
	assert.NoError(t, err)
	assert.Equal(t, expected, history)
}
