// Package engagementservice runs the engagement commands end to end. Each
// command commits through the component services, is replayed when storage
// reports a transient failure, and fires its side effects only after the
// commit succeeded.
package engagementservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/reconcile"
	"github.com/GlebRadaev/jobmart/internal/service/interestservice"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

const (
	DefaultRetries = 3
	retryBackoff   = 50 * time.Millisecond
)

type Interests interface {
	CreateInterest(ctx context.Context, jobID, providerID uuid.UUID) (*domain.Interest, error)
	ShareContact(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error)
	PayAccessFee(ctx context.Context, interestID, actor uuid.UUID, idempotencyKey string) (*interestservice.PaymentResult, error)
	Withdraw(ctx context.Context, interestID, actor uuid.UUID) (*domain.Interest, error)
	CloseJob(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Interest, error)
	ListByJob(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Interest, error)
}

type Quotes interface {
	SubmitQuote(ctx context.Context, jobID, providerID uuid.UUID, price int64) (*domain.Quote, error)
	AcceptQuote(ctx context.Context, quoteID, actor uuid.UUID) (*quoteservice.AcceptResult, error)
	ListByJob(ctx context.Context, jobID, actor uuid.UUID) ([]domain.Quote, error)
}

type Access interface {
	CanMessage(ctx context.Context, jobID, providerID, requesterID uuid.UUID) (bool, error)
}

type Wallet interface {
	RequestFunding(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error)
	ApproveFunding(ctx context.Context, txID uuid.UUID) (*walletservice.FundingResult, error)
	RejectFunding(ctx context.Context, txID uuid.UUID) (*walletservice.FundingResult, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.Transaction, error)
	Balance(ctx context.Context, accountID uuid.UUID) (int64, error)
	History(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error)
}

type Jobs interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Job, error)
}

type Conversations interface {
	Ensure(ctx context.Context, jobID, providerID uuid.UUID) (string, error)
}

type Journal interface {
	Record(entry reconcile.Entry) (*reconcile.Entry, error)
}

type Metrics interface {
	ObserveCommand(command, outcome string, elapsed time.Duration)
	Retry(command string)
	SideEffectFailed(effect string)
	AccessFeeCharged(coins int64)
}

// Deps are the collaborators of the orchestrator. All are required.
type Deps struct {
	Interests     Interests
	Quotes        Quotes
	Access        Access
	Wallet        Wallet
	Jobs          Jobs
	Conversations Conversations
	Notifier      notify.Notifier
	Journal       Journal
	Metrics       Metrics
}

type Service struct {
	Deps
	retries int
	backoff time.Duration
}

func New(deps Deps, retries int) *Service {
	if retries < 0 {
		retries = DefaultRetries
	}
	return &Service{Deps: deps, retries: retries, backoff: retryBackoff}
}

// run executes fn and replays it while it fails with domain.ErrTransient, at
// most s.retries extra times. An ambiguous commit is journaled and returned
// without a replay.
func run[T any](ctx context.Context, s *Service, command, subject string, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()

	var (
		result T
		err    error
	)
	for attempt := 1; ; attempt++ {
		result, err = fn(ctx)
		if err == nil || !errors.Is(err, domain.ErrTransient) || attempt > s.retries {
			break
		}

		s.Metrics.Retry(command)
		zap.L().Warn("transient storage error, retrying",
			zap.String("command", command), zap.Int("attempt", attempt), zap.Error(err))
		if werr := sleep(ctx, s.backoff*time.Duration(attempt)); werr != nil {
			break
		}
	}

	s.Metrics.ObserveCommand(command, outcome(err), time.Since(start))
	if errors.Is(err, domain.ErrCommitUnknown) {
		s.record(reconcile.KindCommitUnknown, command, subject, err)
	}
	return result, err
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return domain.Kind(err)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// sideEffectFailed logs, counts and journals a failed post-commit effect.
// Committed state is never touched.
func (s *Service) sideEffectFailed(command, effect, subject string, err error) {
	zap.L().Error("side effect failed",
		zap.String("command", command), zap.String("effect", effect), zap.String("subject", subject), zap.Error(err))
	s.Metrics.SideEffectFailed(effect)
	s.record(reconcile.KindSideEffect, command+":"+effect, subject, err)
}

func (s *Service) record(kind reconcile.Kind, command, subject string, err error) {
	_, jerr := s.Journal.Record(reconcile.Entry{
		Kind:    kind,
		Command: command,
		Subject: subject,
		Error:   err.Error(),
	})
	if jerr != nil {
		zap.L().Error("failed to journal for reconciliation",
			zap.String("command", command), zap.String("subject", subject), zap.Error(jerr))
	}
}

func (s *Service) notify(ctx context.Context, command string, userID uuid.UUID, event notify.Event, payload map[string]string) {
	if err := s.Notifier.Notify(context.WithoutCancel(ctx), userID, event, payload); err != nil {
		s.sideEffectFailed(command, "notify", userID.String(), err)
	}
}

func (s *Service) notifyAll(ctx context.Context, command string, batch []notify.Notification) {
	if len(batch) == 0 {
		return
	}
	if err := notify.NotifyAll(context.WithoutCancel(ctx), s.Notifier, batch); err != nil {
		s.sideEffectFailed(command, "notify", string(batch[0].Event), err)
	}
}

// poster resolves the poster of jobID for a side effect.
func (s *Service) poster(ctx context.Context, command string, jobID uuid.UUID) (uuid.UUID, bool) {
	job, err := s.Jobs.Get(context.WithoutCancel(ctx), jobID)
	if err != nil {
		s.sideEffectFailed(command, "job_lookup", jobID.String(), err)
		return uuid.Nil, false
	}
	return job.PosterID, true
}
