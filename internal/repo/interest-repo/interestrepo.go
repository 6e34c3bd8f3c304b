package interestrepo

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

const interestColumns = `id, job_id, provider_id, status, created_at, contact_shared_at, payment_made_at, payment_tx_id, withdrawn_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create inserts the interest. The partial unique index on active
// (job_id, provider_id) pairs turns a concurrent duplicate into
// domain.ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, interest *domain.Interest) (*domain.Interest, error) {
	query := `
        INSERT INTO interests (id, job_id, provider_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, interest.ID, interest.JobID, interest.ProviderID, interest.Status, interest.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err, "interests_active_uniq") {
			return nil, domain.ErrAlreadyExists
		}
		zap.L().Error("can't save interest", zap.Error(err))
		return nil, err
	}
	return interest, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Interest, error) {
	query := `SELECT ` + interestColumns + ` FROM interests WHERE id = $1`
	return scanInterest(r.db.QueryRow(ctx, query, id))
}

// Lock reads the interest and holds its row lock until the surrounding
// transaction ends.
func (r *Repository) Lock(ctx context.Context, id uuid.UUID) (*domain.Interest, error) {
	query := `SELECT ` + interestColumns + ` FROM interests WHERE id = $1 FOR UPDATE`
	return scanInterest(r.db.QueryRow(ctx, query, id))
}

// FindActive returns the non-withdrawn interest of provider in job.
func (r *Repository) FindActive(ctx context.Context, jobID, providerID uuid.UUID) (*domain.Interest, error) {
	query := `
        SELECT ` + interestColumns + `
        FROM interests
        WHERE job_id = $1 AND provider_id = $2 AND status <> 'WITHDRAWN'
    `
	return scanInterest(r.db.QueryRow(ctx, query, jobID, providerID))
}

func (r *Repository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Interest, error) {
	query := `
        SELECT ` + interestColumns + `
        FROM interests
        WHERE job_id = $1
        ORDER BY created_at
    `
	return r.queryInterests(ctx, query, jobID)
}

func (r *Repository) ShareContact(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Interest, error) {
	query := `
        UPDATE interests
        SET status = 'CONTACT_SHARED', contact_shared_at = $1
        WHERE id = $2 AND status = 'PENDING'
        RETURNING ` + interestColumns
	interest, err := scanInterest(r.db.QueryRow(ctx, query, at, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrWrongStatus
	}
	return interest, err
}

// MarkPaid flips CONTACT_SHARED to PAID_ACCESS and stamps payment_made_at.
// A row that is already paid or no longer CONTACT_SHARED yields
// domain.ErrAlreadyPaid.
func (r *Repository) MarkPaid(ctx context.Context, id uuid.UUID, txID *uuid.UUID, at time.Time) (*domain.Interest, error) {
	query := `
        UPDATE interests
        SET status = 'PAID_ACCESS', payment_made_at = $1, payment_tx_id = $2
        WHERE id = $3 AND status = 'CONTACT_SHARED' AND payment_made_at IS NULL
        RETURNING ` + interestColumns
	interest, err := scanInterest(r.db.QueryRow(ctx, query, at, txID, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrAlreadyPaid
	}
	return interest, err
}

func (r *Repository) Withdraw(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Interest, error) {
	query := `
        UPDATE interests
        SET status = 'WITHDRAWN', withdrawn_at = $1
        WHERE id = $2 AND status IN ('PENDING', 'CONTACT_SHARED')
        RETURNING ` + interestColumns
	interest, err := scanInterest(r.db.QueryRow(ctx, query, at, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrWrongStatus
	}
	return interest, err
}

// WithdrawByJob withdraws every open interest of the job and returns them.
func (r *Repository) WithdrawByJob(ctx context.Context, jobID uuid.UUID, at time.Time) ([]domain.Interest, error) {
	query := `
        UPDATE interests
        SET status = 'WITHDRAWN', withdrawn_at = $1
        WHERE job_id = $2 AND status IN ('PENDING', 'CONTACT_SHARED')
        RETURNING ` + interestColumns
	return r.queryInterests(ctx, query, at, jobID)
}

func (r *Repository) queryInterests(ctx context.Context, query string, args ...any) ([]domain.Interest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch interests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var interests []domain.Interest
	for rows.Next() {
		var interest domain.Interest
		if err := scanInto(rows, &interest); err != nil {
			zap.L().Error("failed to scan interest row", zap.Error(err))
			return nil, err
		}
		interests = append(interests, interest)
	}
	return interests, rows.Err()
}

func scanInterest(row pgx.Row) (*domain.Interest, error) {
	var interest domain.Interest
	if err := scanInto(row, &interest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to scan interest", zap.Error(err))
		return nil, err
	}
	return &interest, nil
}

func scanInto(row pgx.Row, i *domain.Interest) error {
	return row.Scan(&i.ID, &i.JobID, &i.ProviderID, &i.Status, &i.CreatedAt,
		&i.ContactSharedAt, &i.PaymentMadeAt, &i.PaymentTxID, &i.WithdrawnAt)
}
