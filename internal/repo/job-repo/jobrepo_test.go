package jobrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/jobmart/internal/domain"
)

var jobRowColumns = []string{"id", "poster_id", "category", "status", "access_fee_coins", "expires_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	id, posterID := uuid.New(), uuid.New()
	expires := time.Now().Add(24 * time.Hour)
	query := regexp.QuoteMeta(`SELECT id, poster_id, category, status, access_fee_coins, expires_at FROM jobs WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.Job
	}{
		{
			name: "Existing job",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).
					WillReturnRows(pgxmock.NewRows(jobRowColumns).
						AddRow(id, posterID, "plumbing", domain.JobOpen, int64(10), expires))
			},
			result: &domain.Job{ID: id, PosterID: posterID, Category: "plumbing", Status: domain.JobOpen, AccessFeeCoins: 10, ExpiresAt: expires},
		},
		{
			name: "Missing job",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), id)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkInProgress(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta(`SET status = 'IN_PROGRESS' WHERE id = $1 AND status = 'OPEN'`)

	t.Run("Open job", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(id).
			WillReturnRows(pgxmock.NewRows(jobRowColumns).
				AddRow(id, uuid.New(), "plumbing", domain.JobInProgress, int64(10), time.Now()))

		job, err := repo.MarkInProgress(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobInProgress, job.Status)
	})

	t.Run("Job no longer open", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)

		job, err := repo.MarkInProgress(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrJobNotActive)
		assert.Nil(t, job)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Close(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'CLOSED' WHERE id = $1 AND status <> 'CLOSED'`)).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	job, err := repo.Close(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrJobNotActive)
	assert.Nil(t, job)
	assert.NoError(t, mock.ExpectationsWereMet())
}
