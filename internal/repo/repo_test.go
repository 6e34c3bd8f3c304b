package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/jobmart/internal/pg"
	interestrepo "github.com/GlebRadaev/jobmart/internal/repo/interest-repo"
	jobrepo "github.com/GlebRadaev/jobmart/internal/repo/job-repo"
	memoryrepo "github.com/GlebRadaev/jobmart/internal/repo/memory-repo"
	quoterepo "github.com/GlebRadaev/jobmart/internal/repo/quote-repo"
	walletrepo "github.com/GlebRadaev/jobmart/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &interestrepo.Repository{}, repo.InterestRepo)
	assert.IsType(t, &quoterepo.Repository{}, repo.QuoteRepo)
	assert.IsType(t, &jobrepo.Repository{}, repo.JobRepo)
	assert.NotNil(t, repo.TxManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestNewMemory(t *testing.T) {
	repo, jobs := NewMemory()

	assert.IsType(t, &memoryrepo.WalletRepo{}, repo.WalletRepo)
	assert.IsType(t, &memoryrepo.InterestRepo{}, repo.InterestRepo)
	assert.IsType(t, &memoryrepo.QuoteRepo{}, repo.QuoteRepo)
	assert.Same(t, jobs, repo.JobRepo)
	assert.IsType(t, &memoryrepo.TxManager{}, repo.TxManager)
}
