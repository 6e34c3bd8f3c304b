package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

type TransactionalFn = func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type txKey struct{}

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type TxManager struct {
	db txBeginner
}

func NewTXManager(db txBeginner) *TxManager {
	return &TxManager{db: db}
}

// Begin runs fn inside one database transaction. Calls nested in fn join the
// outer transaction. A failed fn rolls everything back; its error comes back
// classified so callers can tell a replayable failure from an ambiguous commit.
func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Classify(fmt.Errorf("begin tx: %w", err))
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("rollback failed", zap.Error(rbErr))
		}
		return Classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		if IsRetryable(err) {
			return fmt.Errorf("%w: commit: %w", domain.ErrTransient, err)
		}
		zap.L().Error("commit outcome unknown", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrCommitUnknown, err)
	}
	return nil
}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}
