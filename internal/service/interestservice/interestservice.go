package interestservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/pkg/keylock"
)

type Repo interface {
	Create(ctx context.Context, interest *domain.Interest) (*domain.Interest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Interest, error)
	Lock(ctx context.Context, id uuid.UUID) (*domain.Interest, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.Interest, error)
	ShareContact(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Interest, error)
	MarkPaid(ctx context.Context, id uuid.UUID, txID *uuid.UUID, at time.Time) (*domain.Interest, error)
	Withdraw(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Interest, error)
	WithdrawByJob(ctx context.Context, jobID uuid.UUID, at time.Time) ([]domain.Interest, error)
}

type JobRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	Close(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

type Wallet interface {
	Debit(ctx context.Context, req domain.DebitRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
}

type TxManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentResult is the outcome of PayAccessFee. Transaction is nil when the
// job has no access fee. Replayed is set when the call repeated an earlier
// payment with the same idempotency key.
type PaymentResult struct {
	Interest    *domain.Interest
	Transaction *domain.Transaction
	Replayed    bool
}

type Service struct {
	repo      Repo
	jobs      JobRepo
	wallet    Wallet
	txManager TxManager
	locks     *keylock.Locker
	now       func() time.Time
}

func New(repo Repo, jobs JobRepo, wallet Wallet, txManager TxManager) *Service {
	return &Service{
		repo:      repo,
		jobs:      jobs,
		wallet:    wallet,
		txManager: txManager,
		locks:     keylock.New(),
		now:       time.Now,
	}
}

func (s *Service) CreateInterest(ctx context.Context, jobID, providerID uuid.UUID) (*domain.Interest, error) {
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

	interest, err := s.repo.Create(ctx, &domain.Interest{
		ID:         uuid.New(),
		JobID:      jobID,
		ProviderID: providerID,
		Status:     domain.InterestPending,
		CreatedAt:  now,
	})
	if err != nil {
		logInternal("failed to create interest", err)
		return nil, err
	}
	return interest, nil
}

// ShareContact lets the job poster reveal contact details to the provider.
func (s *Service) ShareContact(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error) {
	unlock, err := s.locks.Lock(ctx, interestKey(interestID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	interest, job, err := s.load(ctx, interestID)
	if err != nil {
		return nil, err
	}
	if job.PosterID != actor {
		return nil, domain.ErrNotAuthorized
	}
	if interest.Status != domain.InterestPending {
		return nil, domain.ErrWrongStatus
	}

	shared, err := s.repo.ShareContact(ctx, interestID, s.now())
	if err != nil {
		logInternal("failed to share contact", err)
		return nil, err
	}
	return shared, nil
}

// PayAccessFee charges the job's access fee to the provider and unlocks
// the conversation. The debit and the status change commit together or not
// at all, and a fee is charged at most once per interest.
func (s *Service) PayAccessFee(ctx context.Context, interestID, actor uuid.UUID, idempotencyKey string) (*PaymentResult, error) {
	unlock, err := s.locks.Lock(ctx, interestKey(interestID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var result *PaymentResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		interest, err := s.repo.Lock(ctx, interestID)
		if err != nil {
			return err
		}
		if interest.ProviderID != actor {
			return domain.ErrNotAuthorized
		}
		if interest.IsPaid() {
			result, err = s.replay(ctx, interest, idempotencyKey)
			return err
		}
		if interest.Status != domain.InterestContactShared {
			return domain.ErrWrongStatus
		}

		job, err := s.jobs.Get(ctx, interest.JobID)
		if err != nil {
			return err
		}

		var (
			txn  *domain.Transaction
			txID *uuid.UUID
		)
		if job.AccessFeeCoins > 0 {
			txn, err = s.wallet.Debit(ctx, domain.DebitRequest{
				AccountID:      actor,
				Amount:         job.AccessFeeCoins,
				Type:           domain.TransactionAccessFeeDebit,
				Reference:      interest.ID.String(),
				IdempotencyKey: idempotencyKey,
			})
			if err != nil {
				return err
			}
			txID = &txn.ID
		}

		paid, err := s.repo.MarkPaid(ctx, interestID, txID, s.now())
		if err != nil {
			return err
		}
		result = &PaymentResult{Interest: paid, Transaction: txn}
		return nil
	})
	if err != nil {
		logInternal("failed to pay access fee", err)
		return nil, err
	}
	return result, nil
}

// replay returns the recorded payment when key matches the idempotency key
// of its debit, and domain.ErrAlreadyPaid otherwise.
func (s *Service) replay(ctx context.Context, interest *domain.Interest, key string) (*PaymentResult, error) {
	if key == "" || interest.PaymentTxID == nil {
		return nil, domain.ErrAlreadyPaid
	}
	txn, err := s.wallet.GetTransaction(ctx, *interest.PaymentTxID)
	if err != nil {
		return nil, err
	}
	if txn.IdempotencyKey != key {
		return nil, domain.ErrAlreadyPaid
	}
	return &PaymentResult{Interest: interest, Transaction: txn, Replayed: true}, nil
}

// Withdraw ends an open interest on behalf of either party.
func (s *Service) Withdraw(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error) {
	unlock, err := s.locks.Lock(ctx, interestKey(interestID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	interest, job, err := s.load(ctx, interestID)
	if err != nil {
		return nil, err
	}
	if actor != interest.ProviderID && actor != job.PosterID {
		return nil, domain.ErrNotAuthorized
	}
	if interest.Status.IsTerminal() {
		return nil, domain.ErrWrongStatus
	}

	withdrawn, err := s.repo.Withdraw(ctx, interestID, s.now())
	if err != nil {
		logInternal("failed to withdraw interest", err)
		return nil, err
	}
	return withdrawn, nil
}

// CloseJob closes the job and withdraws every interest still open on it.
// It returns the withdrawn interests.
func (s *Service) CloseJob(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Interest, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PosterID != actor {
		return nil, domain.ErrNotAuthorized
	}

	var withdrawn []domain.Interest
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.jobs.Close(ctx, jobID); err != nil {
			return err
		}
		withdrawn, err = s.repo.WithdrawByJob(ctx, jobID, s.now())
		return err
	})
	if err != nil {
		logInternal("failed to close job", err)
		return nil, err
	}
	return withdrawn, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Interest, error) {
	return s.repo.Get(ctx, id)
}

// ListByJob returns the job's interests. Only the poster may list them.
func (s *Service) ListByJob(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Interest, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PosterID != actor {
		return nil, domain.ErrNotAuthorized
	}
	interests, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		zap.L().Error("failed to list interests", zap.Error(err))
		return nil, err
	}
	return interests, nil
}

func (s *Service) load(ctx context.Context, interestID uuid.UUID) (*domain.Interest, *domain.Job, error) {
	interest, err := s.repo.Get(ctx, interestID)
	if err != nil {
		return nil, nil, err
	}
	job, err := s.jobs.Get(ctx, interest.JobID)
	if err != nil {
		return nil, nil, err
	}
	return interest, job, nil
}

func interestKey(id uuid.UUID) string {
	return "interest:" + id.String()
}

func logInternal(msg string, err error) {
	if domain.Kind(err) == "internal" {
		zap.L().Error(msg, zap.Error(err))
	}
}
