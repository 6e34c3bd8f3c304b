package memoryrepo

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type WalletRepo struct {
	store *Store
}

func NewWalletRepo(store *Store) *WalletRepo {
	return &WalletRepo{store: store}
}

func (r *WalletRepo) GetWallet(_ context.Context, accountID uuid.UUID) (*domain.Wallet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wallet, ok := r.store.wallets[accountID]
	if !ok {
		return nil, nil
	}
	w := *wallet
	return &w, nil
}

func (r *WalletRepo) Debit(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, ok := s.wallets[txn.AccountID]
	if !ok || wallet.BalanceCoins < txn.AmountCoins {
		return nil, domain.ErrInsufficientFunds
	}
	if txn.Type == domain.TransactionAccessFeeDebit && r.accessFeeExists(txn.Reference) {
		return nil, domain.ErrAlreadyPaid
	}

	r.applyDelta(ctx, wallet, -txn.AmountCoins)
	txn.WalletID = wallet.ID
	r.insert(ctx, txn)
	return copyTransaction(txn), nil
}

func (r *WalletRepo) Credit(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := r.ensureWallet(txn.AccountID)
	r.applyDelta(ctx, wallet, txn.AmountCoins)
	txn.WalletID = wallet.ID
	r.insert(ctx, txn)
	return copyTransaction(txn), nil
}

func (r *WalletRepo) CreatePending(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	wallet := r.ensureWallet(txn.AccountID)
	txn.WalletID = wallet.ID
	r.insert(ctx, txn)
	return copyTransaction(txn), nil
}

func (r *WalletRepo) AddBalance(ctx context.Context, accountID uuid.UUID, amount int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	r.applyDelta(ctx, r.ensureWallet(accountID), amount)
	return nil
}

func (r *WalletRepo) GetTransaction(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txn, ok := r.store.transactions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyTransaction(txn), nil
}

// LockTransaction is a plain read: the service's keyed lock already
// serializes decisions on one transaction.
func (r *WalletRepo) LockTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return r.GetTransaction(ctx, id)
}

func (r *WalletRepo) DecideTransaction(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, decidedAt time.Time) (*domain.Transaction, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.transactions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if txn.Status != domain.TransactionPending {
		return nil, domain.ErrWrongStatus
	}

	prev := *txn
	txn.Status = status
	txn.DecidedAt = &decidedAt
	record(ctx, func() { *txn = prev })
	return copyTransaction(txn), nil
}

func (r *WalletRepo) ListTransactions(_ context.Context, accountID uuid.UUID) ([]domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var transactions []domain.Transaction
	for _, txn := range s.transactions {
		if txn.AccountID == accountID {
			transactions = append(transactions, *copyTransaction(txn))
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return s.txSeq[a.ID] > s.txSeq[b.ID]
	})
	return transactions, nil
}

// ensureWallet is not journaled; wallets are never deleted.
func (r *WalletRepo) ensureWallet(accountID uuid.UUID) *domain.Wallet {
	s := r.store
	if wallet, ok := s.wallets[accountID]; ok {
		return wallet
	}
	now := time.Now()
	wallet := &domain.Wallet{ID: uuid.New(), AccountID: accountID, CreatedAt: now, UpdatedAt: now}
	s.wallets[accountID] = wallet
	return wallet
}

// applyDelta records a relative undo, so a rollback stays correct even after
// other units changed the same balance in between.
func (r *WalletRepo) applyDelta(ctx context.Context, wallet *domain.Wallet, delta int64) {
	wallet.BalanceCoins += delta
	wallet.UpdatedAt = time.Now()
	record(ctx, func() { wallet.BalanceCoins -= delta })
}

func (r *WalletRepo) insert(ctx context.Context, txn *domain.Transaction) {
	s := r.store
	stored := copyTransaction(txn)
	s.transactions[txn.ID] = stored
	s.txSeq[txn.ID] = s.nextSeq()
	id := txn.ID
	record(ctx, func() {
		delete(s.transactions, id)
		delete(s.txSeq, id)
	})
}

func (r *WalletRepo) accessFeeExists(reference string) bool {
	for _, txn := range r.store.transactions {
		if txn.Type == domain.TransactionAccessFeeDebit && txn.Reference == reference {
			return true
		}
	}
	return false
}

func copyTransaction(txn *domain.Transaction) *domain.Transaction {
	c := *txn
	if txn.DecidedAt != nil {
		at := *txn.DecidedAt
		c.DecidedAt = &at
	}
	return &c
}
