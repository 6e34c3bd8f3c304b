package quoteservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/pkg/keylock"
)

const DefaultLimit = 5

type Repo interface {
	CreateBounded(ctx context.Context, quote *domain.Quote, limit int) (*domain.Quote, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Quote, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Quote, error)
	Accept(ctx context.Context, quote *domain.Quote, at time.Time) (*domain.Quote, []domain.Quote, error)
}

type JobRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	MarkInProgress(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

type UserClient interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type TxManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

// AcceptResult carries the accepted quote, the siblings rejected with it and
// the job now in progress.
type AcceptResult struct {
	Accepted *domain.Quote
	Rejected []domain.Quote
	Job      *domain.Job
}

type Service struct {
	repo      Repo
	jobs      JobRepo
	users     UserClient
	txManager TxManager
	locks     *keylock.Locker
	limit     int
	now       func() time.Time
}

func New(repo Repo, jobs JobRepo, users UserClient, txManager TxManager, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{
		repo:      repo,
		jobs:      jobs,
		users:     users,
		txManager: txManager,
		locks:     keylock.New(),
		limit:     limit,
		now:       time.Now,
	}
}

// SubmitQuote adds the provider's quote while the job holds fewer than the
// configured number of live quotes.
func (s *Service) SubmitQuote(ctx context.Context, jobID, providerID uuid.UUID, price int64) (*domain.Quote, error) {
	if price <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PosterID == providerID {
		return nil, domain.ErrNotAuthorized
	}
	now := s.now()
	if err := job.AcceptsEngagement(now); err != nil {
		return nil, err
	}

	provider, err := s.users.GetUser(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !provider.HasCategory(job.Category) {
		return nil, domain.ErrCategoryMismatch
	}

	unlock, err := s.locks.Lock(ctx, jobKey(jobID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	quote, err := s.repo.CreateBounded(ctx, &domain.Quote{
		ID:         uuid.New(),
		JobID:      jobID,
		ProviderID: providerID,
		Price:      price,
		Status:     domain.QuotePending,
		CreatedAt:  now,
	}, s.limit)
	if err != nil {
		logInternal("failed to submit quote", err)
		return nil, err
	}
	return quote, nil
}

// AcceptQuote accepts one quote, rejects its pending siblings and starts the
// job, all in one unit.
func (s *Service) AcceptQuote(ctx context.Context, quoteID, actor uuid.UUID) (*AcceptResult, error) {
	quote, err := s.repo.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, jobKey(quote.JobID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	job, err := s.jobs.Get(ctx, quote.JobID)
	if err != nil {
		return nil, err
	}
	if job.PosterID != actor {
		return nil, domain.ErrNotAuthorized
	}
	if job.Status != domain.JobOpen {
		return nil, domain.ErrJobNotActive
	}

	var result AcceptResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		accepted, rejected, err := s.repo.Accept(ctx, quote, s.now())
		if err != nil {
			return err
		}
		started, err := s.jobs.MarkInProgress(ctx, quote.JobID)
		if err != nil {
			return err
		}
		result = AcceptResult{Accepted: accepted, Rejected: rejected, Job: started}
		return nil
	})
	if err != nil {
		logInternal("failed to accept quote", err)
		return nil, err
	}
	return &result, nil
}

// ListByJob returns every quote to the poster and only their own to a
// provider.
func (s *Service) ListByJob(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Quote, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	quotes, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to list quotes", zap.Error(err))
		return nil, err
	}
	if job.PosterID == actor {
		return quotes, nil
	}

	own := make([]domain.Quote, 0, 1)
	for _, q := range quotes {
		if q.ProviderID == actor {
			own = append(own, q)
		}
	}
	return own, nil
}

func jobKey(id uuid.UUID) string {
	return "job:" + id.String()
}

func logInternal(msg string, err error) {
	if domain.Kind(err) == "internal" {
		zap.L().Error(msg, zap.Error(err))
	}
}
