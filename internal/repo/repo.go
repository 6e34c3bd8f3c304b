package repo

import (
	"github.com/GlebRadaev/jobmart/internal/pg"
	interestrepo "github.com/GlebRadaev/jobmart/internal/repo/interest-repo"
	jobrepo "github.com/GlebRadaev/jobmart/internal/repo/job-repo"
	memoryrepo "github.com/GlebRadaev/jobmart/internal/repo/memory-repo"
	quoterepo "github.com/GlebRadaev/jobmart/internal/repo/quote-repo"
	walletrepo "github.com/GlebRadaev/jobmart/internal/repo/wallet-repo"
	"github.com/GlebRadaev/jobmart/internal/service/accessservice"
	"github.com/GlebRadaev/jobmart/internal/service/interestservice"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

type InterestRepo interface {
	interestservice.Repo
	accessservice.InterestRepo
}

type JobRepo interface {
	interestservice.JobRepo
	quoteservice.JobRepo
}

type Repositories struct {
	WalletRepo   walletservice.Repo
	InterestRepo InterestRepo
	QuoteRepo    quoteservice.Repo
	JobRepo      JobRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		WalletRepo:   walletrepo.New(conn, txManager),
		InterestRepo: interestrepo.New(conn),
		QuoteRepo:    quoterepo.New(conn, txManager),
		JobRepo:      jobrepo.New(conn),
		TxManager:    txManager,
	}
}

// NewMemory keeps all state in process. Jobs are returned separately so the
// caller can seed them.
func NewMemory() (*Repositories, *memoryrepo.JobRepo) {
	store := memoryrepo.NewStore()
	jobs := memoryrepo.NewJobRepo(store)
	return &Repositories{
		WalletRepo:   memoryrepo.NewWalletRepo(store),
		InterestRepo: memoryrepo.NewInterestRepo(store),
		QuoteRepo:    memoryrepo.NewQuoteRepo(store),
		JobRepo:      jobs,
		TxManager:    memoryrepo.NewTxManager(store),
	}, jobs
}
