package jobrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/pg"
)

const jobColumns = `id, poster_id, category, status, access_fee_coins, expires_at`

// Repository reads the listings module's jobs table. Only the status column
// is ever written here.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

// MarkInProgress moves an OPEN job to IN_PROGRESS. Any other status yields
// domain.ErrJobNotActive.
func (r *Repository) MarkInProgress(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `
        UPDATE jobs
        SET status = 'IN_PROGRESS'
        WHERE id = $1 AND status = 'OPEN'
        RETURNING ` + jobColumns
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrJobNotActive
	}
	return job, err
}

// Close moves the job to CLOSED. A job that is already closed yields
// domain.ErrJobNotActive.
func (r *Repository) Close(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `
        UPDATE jobs
        SET status = 'CLOSED'
        WHERE id = $1 AND status <> 'CLOSED'
        RETURNING ` + jobColumns
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrJobNotActive
	}
	return job, err
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(&job.ID, &job.PosterID, &job.Category, &job.Status, &job.AccessFeeCoins, &job.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to scan job", zap.Error(err))
		return nil, err
	}
	return &job, nil
}
