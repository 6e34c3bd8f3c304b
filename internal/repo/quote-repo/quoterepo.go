package quoterepo

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

const quoteColumns = `id, job_id, provider_id, price, status, created_at, decided_at`

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

// CreateBounded inserts the quote unless the job already holds limit
// non-rejected quotes or the provider has quoted before. Submissions for one
// job are serialized by a transaction-scoped advisory lock.
func (r *Repository) CreateBounded(ctx context.Context, quote *domain.Quote, limit int) (*domain.Quote, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.lockJob(ctx, quote.JobID); err != nil {
			return err
		}

		var quoted bool
		err := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM quotes WHERE job_id = $1 AND provider_id = $2)`,
			quote.JobID, quote.ProviderID).Scan(&quoted)
		if err != nil {
			zap.L().Error("failed to check existing quote", zap.Error(err))
			return err
		}
		if quoted {
			return domain.ErrAlreadyQuoted
		}

		var count int
		err = r.db.QueryRow(ctx,
			`SELECT count(*) FROM quotes WHERE job_id = $1 AND status <> 'REJECTED'`,
			quote.JobID).Scan(&count)
		if err != nil {
			zap.L().Error("failed to count quotes", zap.Error(err))
			return err
		}
		if count >= limit {
			return domain.ErrQuoteLimitReached
		}

		query := `
            INSERT INTO quotes (id, job_id, provider_id, price, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6)
        `
		_, err = r.db.Exec(ctx, query, quote.ID, quote.JobID, quote.ProviderID, quote.Price, quote.Status, quote.CreatedAt)
		if err != nil {
			if pg.IsUniqueViolation(err, "quotes_job_provider_uniq") {
				return domain.ErrAlreadyQuoted
			}
			zap.L().Error("can't save quote", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	var quote domain.Quote
	if err := scanInto(r.db.QueryRow(ctx, query, id), &quote); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to get quote", zap.Error(err))
		return nil, err
	}
	return &quote, nil
}

func (r *Repository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Quote, error) {
	query := `
        SELECT ` + quoteColumns + `
        FROM quotes
        WHERE job_id = $1
        ORDER BY created_at
    `
	return r.queryQuotes(ctx, query, jobID)
}

// Accept moves the PENDING quote to ACCEPTED and rejects its PENDING
// siblings. It returns the accepted quote and the rejected ones.
func (r *Repository) Accept(ctx context.Context, quote *domain.Quote, at time.Time) (*domain.Quote, []domain.Quote, error) {
	var (
		accepted domain.Quote
		rejected []domain.Quote
	)
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.lockJob(ctx, quote.JobID); err != nil {
			return err
		}

		query := `
            UPDATE quotes
            SET status = 'ACCEPTED', decided_at = $1
            WHERE id = $2 AND status = 'PENDING'
            RETURNING ` + quoteColumns
		if err := scanInto(r.db.QueryRow(ctx, query, at, quote.ID), &accepted); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrWrongStatus
			}
			zap.L().Error("failed to accept quote", zap.Error(err))
			return err
		}

		query = `
            UPDATE quotes
            SET status = 'REJECTED', decided_at = $1
            WHERE job_id = $2 AND id <> $3 AND status = 'PENDING'
            RETURNING ` + quoteColumns
		var err error
		rejected, err = r.queryQuotes(ctx, query, at, quote.JobID, quote.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &accepted, rejected, nil
}

func (r *Repository) lockJob(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, jobID.String())
	if err != nil {
		zap.L().Error("failed to take job quote lock", zap.Error(err))
	}
	return err
}

func (r *Repository) queryQuotes(ctx context.Context, query string, args ...any) ([]domain.Quote, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch quotes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var quotes []domain.Quote
	for rows.Next() {
		var quote domain.Quote
		if err := scanInto(rows, &quote); err != nil {
			zap.L().Error("failed to scan quote row", zap.Error(err))
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, rows.Err()
}

func scanInto(row pgx.Row, q *domain.Quote) error {
	return row.Scan(&q.ID, &q.JobID, &q.ProviderID, &q.Price, &q.Status, &q.CreatedAt, &q.DecidedAt)
}
