package engagementservice_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/metrics"
	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/reconcile"
	memoryrepo "github.com/GlebRadaev/jobmart/internal/repo/memory-repo"
	"github.com/GlebRadaev/jobmart/internal/service/accessservice"
	"github.com/GlebRadaev/jobmart/internal/service/engagementservice"
	"github.com/GlebRadaev/jobmart/internal/service/interestservice"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

type sent struct {
	userID uuid.UUID
	event  notify.Event
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sent
}

func (r *recordingNotifier) Notify(_ context.Context, userID uuid.UUID, event notify.Event, _ map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sent{userID: userID, event: event})
	return nil
}

func (r *recordingNotifier) count(event notify.Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sent {
		if s.event == event {
			n++
		}
	}
	return n
}

type fakeConversations struct {
	mu      sync.Mutex
	ensured map[string]int
}

func (f *fakeConversations) Ensure(_ context.Context, jobID, providerID uuid.UUID) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := jobID.String() + "/" + providerID.String()
	f.ensured[key]++
	return "conv:" + key, nil
}

type anyCategory struct{}

func (anyCategory) GetUser(_ context.Context, id uuid.UUID) (*domain.User, error) {
	return &domain.User{ID: id, Categories: []string{"plumbing"}}, nil
}

type fixture struct {
	svc           *engagementservice.Service
	jobs          *memoryrepo.JobRepo
	notifier      *recordingNotifier
	conversations *fakeConversations
	journal       *reconcile.Journal
	metrics       *metrics.Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memoryrepo.NewStore()
	tm := memoryrepo.NewTxManager(store)
	jobs := memoryrepo.NewJobRepo(store)
	interestRepo := memoryrepo.NewInterestRepo(store)

	journal, err := reconcile.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })

	wallet := walletservice.New(memoryrepo.NewWalletRepo(store), tm)
	f := &fixture{
		jobs:          jobs,
		notifier:      &recordingNotifier{},
		conversations: &fakeConversations{ensured: map[string]int{}},
		journal:       journal,
		metrics:       metrics.New(prometheus.NewRegistry()),
	}
	f.svc = engagementservice.New(engagementservice.Deps{
		Interests:     interestservice.New(interestRepo, jobs, wallet, tm),
		Quotes:        quoteservice.New(memoryrepo.NewQuoteRepo(store), jobs, anyCategory{}, tm, quoteservice.DefaultLimit),
		Access:        accessservice.New(interestRepo, jobs),
		Wallet:        wallet,
		Jobs:          jobs,
		Conversations: f.conversations,
		Notifier:      f.notifier,
		Journal:       journal,
		Metrics:       f.metrics,
	}, engagementservice.DefaultRetries)
	return f
}

func (f *fixture) openJob(fee int64) *domain.Job {
	job := &domain.Job{
		ID:             uuid.New(),
		PosterID:       uuid.New(),
		Category:       "plumbing",
		Status:         domain.JobOpen,
		AccessFeeCoins: fee,
		ExpiresAt:      time.Now().Add(time.Hour),
	}
	f.jobs.Put(job)
	return job
}

func (f *fixture) fund(t *testing.T, accountID uuid.UUID, coins int64) {
	t.Helper()
	ctx := context.Background()
	txn, err := f.svc.RequestFunding(ctx, accountID, coins)
	require.NoError(t, err)
	_, err = f.svc.ApproveFunding(ctx, txn.ID)
	require.NoError(t, err)
}

func TestEngagementUnlock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.openJob(10)
	provider, stranger := uuid.New(), uuid.New()
	f.fund(t, provider, 25)

	interest, err := f.svc.ShowInterest(ctx, job.ID, provider)
	require.NoError(t, err)

	for _, status := range []string{"pending", "contact_shared"} {
		ok, err := f.svc.CanMessage(ctx, job.ID, provider, provider)
		require.NoError(t, err, status)
		assert.False(t, ok, status)

		_, err = f.svc.OpenConversation(ctx, job.ID, provider, job.PosterID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized, status)

		if status == "pending" {
			_, err = f.svc.ShareContact(ctx, interest.ID, job.PosterID)
			require.NoError(t, err)
		}
	}

	result, err := f.svc.PayAccessFee(ctx, interest.ID, provider, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InterestPaidAccess, result.Interest.Status)
	assert.False(t, result.Replayed)

	for _, requester := range []uuid.UUID{provider, job.PosterID} {
		ok, err := f.svc.CanMessage(ctx, job.ID, provider, requester)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := f.svc.CanMessage(ctx, job.ID, provider, stranger)
	require.NoError(t, err)
	assert.False(t, ok)

	replay, err := f.svc.PayAccessFee(ctx, interest.ID, provider, "pay-1")
	require.NoError(t, err)
	assert.True(t, replay.Replayed)
	assert.Equal(t, result.Transaction.ID, replay.Transaction.ID)

	_, err = f.svc.PayAccessFee(ctx, interest.ID, provider, "pay-2")
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)

	id, err := f.svc.OpenConversation(ctx, job.ID, provider, job.PosterID)
	require.NoError(t, err)
	assert.Equal(t, "conv:"+job.ID.String()+"/"+provider.String(), id)

	balance, err := f.svc.Balance(ctx, provider)
	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)

	assert.Equal(t, 1, f.notifier.count(notify.EventInterestCreated))
	assert.Equal(t, 1, f.notifier.count(notify.EventContactShared))
	assert.Equal(t, 1, f.notifier.count(notify.EventAccessPaid))
	assert.Equal(t, 1, f.notifier.count(notify.EventFundingApproved))
	assert.Equal(t, 10.0, testutil.ToFloat64(f.metrics.AccessFeeCoins))

	entries, err := f.journal.List(true)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEngagementUnlock_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.openJob(10)
	provider := uuid.New()
	f.fund(t, provider, 5)

	interest, err := f.svc.ShowInterest(ctx, job.ID, provider)
	require.NoError(t, err)
	_, err = f.svc.ShareContact(ctx, interest.ID, job.PosterID)
	require.NoError(t, err)

	_, err = f.svc.PayAccessFee(ctx, interest.ID, provider, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	balance, err := f.svc.Balance(ctx, provider)
	require.NoError(t, err)
	assert.Equal(t, int64(5), balance)

	interests, err := f.svc.ListInterests(ctx, job.ID, job.PosterID)
	require.NoError(t, err)
	require.Len(t, interests, 1)
	assert.Equal(t, domain.InterestContactShared, interests[0].Status)
	assert.Equal(t, 0, f.notifier.count(notify.EventAccessPaid))
	assert.Empty(t, f.conversations.ensured)
}

func TestEngagementUnlock_ConcurrentPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.openJob(10)
	provider := uuid.New()
	f.fund(t, provider, 100)

	interest, err := f.svc.ShowInterest(ctx, job.ID, provider)
	require.NoError(t, err)
	_, err = f.svc.ShareContact(ctx, interest.ID, job.PosterID)
	require.NoError(t, err)

	const n = 12
	var (
		mu          sync.Mutex
		succeeded   int
		alreadyPaid int
	)
	var g errgroup.Group
	for range n {
		g.Go(func() error {
			_, err := f.svc.PayAccessFee(ctx, interest.ID, provider, "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrAlreadyPaid):
				alreadyPaid++
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, alreadyPaid)

	balance, err := f.svc.Balance(ctx, provider)
	require.NoError(t, err)
	assert.Equal(t, int64(90), balance)

	history, err := f.svc.History(ctx, provider)
	require.NoError(t, err)
	debits := 0
	for _, txn := range history {
		if txn.Type == domain.TransactionAccessFeeDebit {
			debits++
		}
	}
	assert.Equal(t, 1, debits)
	assert.Equal(t, 1, f.conversations.ensured[job.ID.String()+"/"+provider.String()])
}

func TestQuoteFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.openJob(0)

	providers := make([]uuid.UUID, 10)
	for i := range providers {
		providers[i] = uuid.New()
	}

	var (
		mu      sync.Mutex
		quotes  []*domain.Quote
		limited int
	)
	var g errgroup.Group
	for _, provider := range providers {
		g.Go(func() error {
			quote, err := f.svc.SubmitQuote(ctx, job.ID, provider, 100)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				quotes = append(quotes, quote)
				return nil
			}
			if assert.ErrorIs(t, err, domain.ErrQuoteLimitReached) {
				limited++
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Len(t, quotes, quoteservice.DefaultLimit)
	assert.Equal(t, len(providers)-quoteservice.DefaultLimit, limited)

	result, err := f.svc.AcceptQuote(ctx, quotes[1].ID, job.PosterID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteAccepted, result.Accepted.Status)
	assert.Len(t, result.Rejected, quoteservice.DefaultLimit-1)
	assert.Equal(t, domain.JobInProgress, result.Job.Status)

	_, err = f.svc.AcceptQuote(ctx, quotes[2].ID, job.PosterID)
	assert.ErrorIs(t, err, domain.ErrJobNotActive)

	own, err := f.svc.ListQuotes(ctx, job.ID, quotes[0].ProviderID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, domain.QuoteRejected, own[0].Status)

	assert.Equal(t, quoteservice.DefaultLimit, f.notifier.count(notify.EventQuoteSubmitted))
	assert.Equal(t, 1, f.notifier.count(notify.EventQuoteAccepted))
	assert.Equal(t, quoteservice.DefaultLimit-1, f.notifier.count(notify.EventQuoteRejected))
}

func TestCloseJobWithdrawsOpenInterests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.openJob(0)

	first, err := f.svc.ShowInterest(ctx, job.ID, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.ShowInterest(ctx, job.ID, uuid.New())
	require.NoError(t, err)
	_, err = f.svc.ShareContact(ctx, first.ID, job.PosterID)
	require.NoError(t, err)

	n, err := f.svc.CloseJob(ctx, job.ID, job.PosterID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, f.notifier.count(notify.EventInterestWithdrawn))

	_, err = f.svc.ShowInterest(ctx, job.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrJobNotActive)
}

func TestFundingApprovedTwiceCreditsOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	account := uuid.New()

	txn, err := f.svc.RequestFunding(ctx, account, 40)
	require.NoError(t, err)

	first, err := f.svc.ApproveFunding(ctx, txn.ID)
	require.NoError(t, err)
	second, err := f.svc.ApproveFunding(ctx, txn.ID)
	require.NoError(t, err)
	assert.False(t, first.Replayed)
	assert.True(t, second.Replayed)

	balance, err := f.svc.Balance(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, int64(40), balance)
	assert.Equal(t, 1, f.notifier.count(notify.EventFundingApproved))

	_, err = f.svc.RejectFunding(ctx, txn.ID)
	assert.ErrorIs(t, err, domain.ErrWrongStatus)
}
