package walletservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/pkg/keylock"
)

type Repo interface {
	GetWallet(ctx context.Context, accountID uuid.UUID) (*domain.Wallet, error)
	Debit(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	Credit(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	CreatePending(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	AddBalance(ctx context.Context, accountID uuid.UUID, amount int64) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	LockTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	DecideTransaction(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, decidedAt time.Time) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error)
}

type TxManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

// FundingResult is the outcome of a funding decision. Replayed is set when
// the transaction already carried the requested decision.
type FundingResult struct {
	Transaction *domain.Transaction
	Replayed    bool
}

type Service struct {
	repo      Repo
	txManager TxManager
	locks     *keylock.Locker
	now       func() time.Time
}

func New(repo Repo, txManager TxManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		locks:     keylock.New(),
		now:       time.Now,
	}
}

// Debit decreases the balance of req.AccountID and records the transaction
// in the same unit. When ctx carries an open unit of work the debit joins it.
func (s *Service) Debit(ctx context.Context, req domain.DebitRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if req.Type != domain.TransactionAccessFeeDebit && req.Type != domain.TransactionWithdrawal {
		return nil, domain.ErrInvalidTransactionType
	}

	unlock, err := s.locks.Lock(ctx, walletKey(req.AccountID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	txn, err := s.repo.Debit(ctx, &domain.Transaction{
		ID:             uuid.New(),
		AccountID:      req.AccountID,
		Type:           req.Type,
		AmountCoins:    req.Amount,
		Status:         domain.TransactionApproved,
		Reference:      req.Reference,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      s.now(),
	})
	if err != nil {
		if domain.Kind(err) == "internal" {
			zap.L().Error("failed to debit wallet", zap.Error(err))
		}
		return nil, err
	}
	return txn, nil
}

// Credit records a FUNDING request as PENDING or applies a REFERRAL_CREDIT
// immediately. Other types are refused.
func (s *Service) Credit(ctx context.Context, accountID uuid.UUID, amount int64, typ domain.TransactionType) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	txn := &domain.Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Type:        typ,
		AmountCoins: amount,
		CreatedAt:   s.now(),
	}

	switch typ {
	case domain.TransactionFunding:
		txn.Status = domain.TransactionPending
		created, err := s.repo.CreatePending(ctx, txn)
		if err != nil {
			zap.L().Error("failed to create funding request", zap.Error(err))
			return nil, err
		}
		return created, nil
	case domain.TransactionReferralCredit:
		unlock, err := s.locks.Lock(ctx, walletKey(accountID))
		if err != nil {
			return nil, err
		}
		defer unlock()

		txn.Status = domain.TransactionApproved
		created, err := s.repo.Credit(ctx, txn)
		if err != nil {
			zap.L().Error("failed to credit wallet", zap.Error(err))
			return nil, err
		}
		return created, nil
	default:
		return nil, domain.ErrInvalidTransactionType
	}
}

func (s *Service) RequestFunding(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error) {
	return s.Credit(ctx, accountID, amount, domain.TransactionFunding)
}

// ApproveFunding credits a PENDING funding exactly once. Approving an
// approved funding returns it unchanged.
func (s *Service) ApproveFunding(ctx context.Context, txID uuid.UUID) (*FundingResult, error) {
	return s.decideFunding(ctx, txID, domain.TransactionApproved)
}

// RejectFunding closes a PENDING funding without touching the balance.
func (s *Service) RejectFunding(ctx context.Context, txID uuid.UUID) (*FundingResult, error) {
	return s.decideFunding(ctx, txID, domain.TransactionRejected)
}

func (s *Service) decideFunding(ctx context.Context, txID uuid.UUID, status domain.TransactionStatus) (*FundingResult, error) {
	unlock, err := s.locks.Lock(ctx, transactionKey(txID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	// An approval keeps the wallet locked until its unit ends, so no debit
	// can spend a credit that is still reversible.
	var unlockWallet func()
	defer func() {
		if unlockWallet != nil {
			unlockWallet()
		}
	}()

	var result FundingResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		txn, err := s.repo.LockTransaction(ctx, txID)
		if err != nil {
			return err
		}
		if txn.Type != domain.TransactionFunding {
			return domain.ErrInvalidTransactionType
		}
		switch txn.Status {
		case status:
			result = FundingResult{Transaction: txn, Replayed: true}
			return nil
		case domain.TransactionPending:
		default:
			return domain.ErrWrongStatus
		}

		if status == domain.TransactionApproved {
			unlockWallet, err = s.locks.Lock(ctx, walletKey(txn.AccountID))
			if err != nil {
				return err
			}
		}

		decided, err := s.repo.DecideTransaction(ctx, txID, status, s.now())
		if err != nil {
			return err
		}
		if status == domain.TransactionApproved {
			if err := s.repo.AddBalance(ctx, decided.AccountID, decided.AmountCoins); err != nil {
				return err
			}
		}
		result = FundingResult{Transaction: decided}
		return nil
	})
	if err != nil {
		if domain.Kind(err) == "internal" {
			zap.L().Error("failed to decide funding", zap.Stringer("tx", txID), zap.Error(err))
		}
		return nil, err
	}
	return &result, nil
}

// Withdraw debits the amount immediately. The payout itself happens out of
// band.
func (s *Service) Withdraw(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error) {
	return s.Debit(ctx, domain.DebitRequest{
		AccountID: accountID,
		Amount:    amount,
		Type:      domain.TransactionWithdrawal,
	})
}

// Balance reads the balance in one statement. A missing wallet reads as 0.
func (s *Service) Balance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	wallet, err := s.repo.GetWallet(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return 0, err
	}
	if wallet == nil {
		return 0, nil
	}
	return wallet.BalanceCoins, nil
}

func (s *Service) History(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error) {
	transactions, err := s.repo.ListTransactions(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func walletKey(accountID uuid.UUID) string {
	return "wallet:" + accountID.String()
}

func transactionKey(id uuid.UUID) string {
	return "tx:" + id.String()
}
