package walletrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/pg"
)

const transactionColumns = `id, wallet_id, account_id, type, amount_coins, status, reference, idempotency_key, created_at, decided_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetWallet(ctx context.Context, accountID uuid.UUID) (*domain.Wallet, error) {
	query := `
        SELECT id, account_id, balance_coins, created_at, updated_at
        FROM wallets
        WHERE account_id = $1
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, accountID).
		Scan(&wallet.ID, &wallet.AccountID, &wallet.BalanceCoins, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Debit decrements the balance only when it covers the amount. The
// conditional UPDATE row-locks the wallet, so concurrent debits of one
// wallet queue behind each other and the balance never goes negative.
func (r *Repository) Debit(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        UPDATE wallets
        SET balance_coins = balance_coins - $1, updated_at = now()
        WHERE account_id = $2 AND balance_coins >= $1
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, txn.AmountCoins, txn.AccountID).Scan(&txn.WalletID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) || pg.IsCheckViolation(err, "wallets_balance_non_negative") {
				return domain.ErrInsufficientFunds
			}
			zap.L().Error("failed to debit wallet", zap.Error(err))
			return err
		}
		return r.insertTransaction(ctx, txn)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Credit adds an applied transaction, creating the wallet on first use.
func (r *Repository) Credit(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		walletID, err := r.upsertWallet(ctx, txn.AccountID, txn.AmountCoins)
		if err != nil {
			return err
		}
		txn.WalletID = walletID
		return r.insertTransaction(ctx, txn)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// CreatePending records a transaction that does not touch the balance yet.
func (r *Repository) CreatePending(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		walletID, err := r.upsertWallet(ctx, txn.AccountID, 0)
		if err != nil {
			return err
		}
		txn.WalletID = walletID
		return r.insertTransaction(ctx, txn)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *Repository) AddBalance(ctx context.Context, accountID uuid.UUID, amount int64) error {
	_, err := r.upsertWallet(ctx, accountID, amount)
	return err
}

func (r *Repository) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.scanTransaction(r.db.QueryRow(ctx, query, id))
}

// LockTransaction reads the transaction with a row lock held until the
// surrounding transaction ends.
func (r *Repository) LockTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`
	return r.scanTransaction(r.db.QueryRow(ctx, query, id))
}

// DecideTransaction moves a PENDING transaction to status. Anything not
// PENDING yields domain.ErrWrongStatus.
func (r *Repository) DecideTransaction(ctx context.Context, id uuid.UUID, status domain.TransactionStatus, decidedAt time.Time) (*domain.Transaction, error) {
	query := `
        UPDATE transactions
        SET status = $1, decided_at = $2
        WHERE id = $3 AND status = 'PENDING'
        RETURNING ` + transactionColumns
	txn, err := r.scanTransaction(r.db.QueryRow(ctx, query, status, decidedAt, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrWrongStatus
	}
	return txn, err
}

func (r *Repository) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := scanInto(rows, &txn); err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}

func (r *Repository) upsertWallet(ctx context.Context, accountID uuid.UUID, delta int64) (uuid.UUID, error) {
	query := `
        INSERT INTO wallets (id, account_id, balance_coins)
        VALUES ($1, $2, $3)
        ON CONFLICT (account_id) DO UPDATE
        SET balance_coins = wallets.balance_coins + EXCLUDED.balance_coins, updated_at = now()
        RETURNING id
    `
	var walletID uuid.UUID
	if err := r.db.QueryRow(ctx, query, uuid.New(), accountID, delta).Scan(&walletID); err != nil {
		zap.L().Error("failed to upsert wallet", zap.Error(err))
		return uuid.Nil, err
	}
	return walletID, nil
}

func (r *Repository) insertTransaction(ctx context.Context, txn *domain.Transaction) error {
	query := `
        INSERT INTO transactions (` + transactionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := r.db.Exec(ctx, query,
		txn.ID, txn.WalletID, txn.AccountID, txn.Type, txn.AmountCoins,
		txn.Status, txn.Reference, txn.IdempotencyKey, txn.CreatedAt, txn.DecidedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, "transactions_access_fee_uniq") {
			return domain.ErrAlreadyPaid
		}
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := scanInto(row, &txn); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to scan transaction", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

func scanInto(row pgx.Row, txn *domain.Transaction) error {
	return row.Scan(&txn.ID, &txn.WalletID, &txn.AccountID, &txn.Type, &txn.AmountCoins,
		&txn.Status, &txn.Reference, &txn.IdempotencyKey, &txn.CreatedAt, &txn.DecidedAt)
}
