package engagementservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/jobmart/internal/domain"
	"github.com/GlebRadaev/jobmart/internal/metrics"
	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/reconcile"
	"github.com/GlebRadaev/jobmart/internal/service/interestservice"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

type mocks struct {
	interests     *MockInterests
	quotes        *MockQuotes
	access        *MockAccess
	wallet        *MockWallet
	jobs          *MockJobs
	conversations *MockConversations
	notifier      *notify.MockNotifier
	journal       *MockJournal
	metrics       *metrics.Metrics
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		interests:     NewMockInterests(ctrl),
		quotes:        NewMockQuotes(ctrl),
		access:        NewMockAccess(ctrl),
		wallet:        NewMockWallet(ctrl),
		jobs:          NewMockJobs(ctrl),
		conversations: NewMockConversations(ctrl),
		notifier:      notify.NewMockNotifier(ctrl),
		journal:       NewMockJournal(ctrl),
		metrics:       metrics.New(prometheus.NewRegistry()),
	}
	service := New(Deps{
		Interests:     m.interests,
		Quotes:        m.quotes,
		Access:        m.access,
		Wallet:        m.wallet,
		Jobs:          m.jobs,
		Conversations: m.conversations,
		Notifier:      m.notifier,
		Journal:       m.journal,
		Metrics:       m.metrics,
	}, DefaultRetries)
	service.backoff = time.Millisecond
	return service, m
}

func transient() error {
	return fmt.Errorf("%w: serialization failure", domain.ErrTransient)
}

func TestNew_NegativeRetries(t *testing.T) {
	service := New(Deps{}, -1)
	assert.Equal(t, DefaultRetries, service.retries)

	service = New(Deps{}, 0)
	assert.Equal(t, 0, service.retries)
}

func TestRun_RetriesTransientErrors(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	jobID, providerID, posterID := uuid.New(), uuid.New(), uuid.New()
	interest := &domain.Interest{ID: uuid.New(), JobID: jobID, ProviderID: providerID, Status: domain.InterestPending}

	gomock.InOrder(
		m.interests.EXPECT().CreateInterest(ctx, jobID, providerID).Return(nil, transient()).Times(2),
		m.interests.EXPECT().CreateInterest(ctx, jobID, providerID).Return(interest, nil),
	)
	m.jobs.EXPECT().Get(gomock.Any(), jobID).Return(&domain.Job{ID: jobID, PosterID: posterID}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), posterID, notify.EventInterestCreated, interestPayload(interest)).Return(nil)

	got, err := service.ShowInterest(ctx, jobID, providerID)
	require.NoError(t, err)
	assert.Equal(t, interest, got)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.metrics.RetriesTotal.WithLabelValues(cmdShowInterest)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.CommandsTotal.WithLabelValues(cmdShowInterest, "ok")))
}

func TestRun_GivesUpAfterRetries(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	jobID, providerID := uuid.New(), uuid.New()

	m.interests.EXPECT().CreateInterest(ctx, jobID, providerID).Return(nil, transient()).Times(DefaultRetries + 1)

	_, err := service.ShowInterest(ctx, jobID, providerID)
	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.Equal(t, float64(DefaultRetries), testutil.ToFloat64(m.metrics.RetriesTotal.WithLabelValues(cmdShowInterest)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.CommandsTotal.WithLabelValues(cmdShowInterest, "transient")))
}

func TestRun_CanceledDuringBackoff(t *testing.T) {
	service, m := NewMock(t)
	service.backoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	jobID, providerID := uuid.New(), uuid.New()

	m.interests.EXPECT().CreateInterest(gomock.Any(), jobID, providerID).
		DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID) (*domain.Interest, error) {
			cancel()
			return nil, transient()
		})

	_, err := service.ShowInterest(ctx, jobID, providerID)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestRun_CommitUnknownIsJournaled(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	interestID, providerID := uuid.New(), uuid.New()
	commitErr := fmt.Errorf("%w: connection reset", domain.ErrCommitUnknown)

	m.interests.EXPECT().PayAccessFee(ctx, interestID, providerID, "k1").Return(nil, commitErr).Times(1)
	m.journal.EXPECT().Record(reconcile.Entry{
		Kind:    reconcile.KindCommitUnknown,
		Command: cmdPayAccessFee,
		Subject: interestID.String(),
		Error:   commitErr.Error(),
	}).Return(&reconcile.Entry{ID: "e1"}, nil)

	_, err := service.PayAccessFee(ctx, interestID, providerID, "k1")
	assert.ErrorIs(t, err, domain.ErrCommitUnknown)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.metrics.RetriesTotal.WithLabelValues(cmdPayAccessFee)))
}

func TestRun_DomainErrorsAreNotRetried(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	interestID, providerID := uuid.New(), uuid.New()

	m.interests.EXPECT().PayAccessFee(ctx, interestID, providerID, "").Return(nil, domain.ErrAlreadyPaid).Times(1)

	_, err := service.PayAccessFee(ctx, interestID, providerID, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.CommandsTotal.WithLabelValues(cmdPayAccessFee, "already_paid")))
}

func TestService_PayAccessFee(t *testing.T) {
	ctx := context.Background()
	jobID, providerID, posterID := uuid.New(), uuid.New(), uuid.New()
	interest := &domain.Interest{ID: uuid.New(), JobID: jobID, ProviderID: providerID, Status: domain.InterestPaidAccess}
	debit := &domain.Transaction{ID: uuid.New(), AccountID: providerID, AmountCoins: 10, Type: domain.TransactionAccessFeeDebit}

	tests := []struct {
		name          string
		result        *interestservice.PaymentResult
		setup         func(m *mocks)
		expectCoins   float64
		expectFailure string
	}{
		{
			name:   "first payment fires every side effect",
			result: &interestservice.PaymentResult{Interest: interest, Transaction: debit},
			setup: func(m *mocks) {
				m.jobs.EXPECT().Get(gomock.Any(), jobID).Return(&domain.Job{ID: jobID, PosterID: posterID}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), posterID, notify.EventAccessPaid, gomock.Any()).Return(nil)
				m.conversations.EXPECT().Ensure(gomock.Any(), jobID, providerID).Return("conv-1", nil)
			},
			expectCoins: 10,
		},
		{
			name:   "zero fee charges nothing",
			result: &interestservice.PaymentResult{Interest: interest},
			setup: func(m *mocks) {
				m.jobs.EXPECT().Get(gomock.Any(), jobID).Return(&domain.Job{ID: jobID, PosterID: posterID}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), posterID, notify.EventAccessPaid, gomock.Any()).Return(nil)
				m.conversations.EXPECT().Ensure(gomock.Any(), jobID, providerID).Return("conv-1", nil)
			},
		},
		{
			name:   "replay has no side effects",
			result: &interestservice.PaymentResult{Interest: interest, Transaction: debit, Replayed: true},
			setup:  func(m *mocks) {},
		},
		{
			name:   "conversation failure is journaled and keeps the payment",
			result: &interestservice.PaymentResult{Interest: interest, Transaction: debit},
			setup: func(m *mocks) {
				m.jobs.EXPECT().Get(gomock.Any(), jobID).Return(&domain.Job{ID: jobID, PosterID: posterID}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), posterID, notify.EventAccessPaid, gomock.Any()).Return(nil)
				m.conversations.EXPECT().Ensure(gomock.Any(), jobID, providerID).Return("", errors.New("conversations down"))
				m.journal.EXPECT().Record(reconcile.Entry{
					Kind:    reconcile.KindSideEffect,
					Command: cmdPayAccessFee + ":conversation",
					Subject: interest.ID.String(),
					Error:   "conversations down",
				}).Return(&reconcile.Entry{}, nil)
			},
			expectCoins:   10,
			expectFailure: "conversation",
		},
		{
			name:   "poster lookup failure skips the notification",
			result: &interestservice.PaymentResult{Interest: interest, Transaction: debit},
			setup: func(m *mocks) {
				m.jobs.EXPECT().Get(gomock.Any(), jobID).Return(nil, errors.New("db down"))
				m.journal.EXPECT().Record(gomock.Any()).Return(&reconcile.Entry{}, nil)
				m.conversations.EXPECT().Ensure(gomock.Any(), jobID, providerID).Return("conv-1", nil)
			},
			expectCoins:   10,
			expectFailure: "job_lookup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.interests.EXPECT().PayAccessFee(ctx, interest.ID, providerID, "k1").Return(tt.result, nil)
			tt.setup(m)

			got, err := service.PayAccessFee(ctx, interest.ID, providerID, "k1")
			require.NoError(t, err)
			assert.Equal(t, tt.result, got)
			assert.Equal(t, tt.expectCoins, testutil.ToFloat64(m.metrics.AccessFeeCoins))
			if tt.expectFailure != "" {
				assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.SideEffectFailures.WithLabelValues(tt.expectFailure)))
			}
		})
	}
}

func TestService_ShareContact(t *testing.T) {
	ctx := context.Background()
	interest := &domain.Interest{ID: uuid.New(), JobID: uuid.New(), ProviderID: uuid.New(), Status: domain.InterestContactShared}
	posterID := uuid.New()

	t.Run("notifies the provider", func(t *testing.T) {
		service, m := NewMock(t)
		m.interests.EXPECT().ShareContact(ctx, interest.ID, posterID).Return(interest, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), interest.ProviderID, notify.EventContactShared, interestPayload(interest)).Return(nil)

		got, err := service.ShareContact(ctx, interest.ID, posterID)
		require.NoError(t, err)
		assert.Equal(t, interest, got)
	})

	t.Run("notification failure is journaled", func(t *testing.T) {
		service, m := NewMock(t)
		m.interests.EXPECT().ShareContact(ctx, interest.ID, posterID).Return(interest, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), interest.ProviderID, notify.EventContactShared, gomock.Any()).Return(context.DeadlineExceeded)
		m.journal.EXPECT().Record(reconcile.Entry{
			Kind:    reconcile.KindSideEffect,
			Command: cmdShareContact + ":notify",
			Subject: interest.ProviderID.String(),
			Error:   context.DeadlineExceeded.Error(),
		}).Return(nil, errors.New("journal closed"))

		got, err := service.ShareContact(ctx, interest.ID, posterID)
		require.NoError(t, err)
		assert.Equal(t, interest, got)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.metrics.SideEffectFailures.WithLabelValues("notify")))
	})

	t.Run("full notification pool is journaled", func(t *testing.T) {
		service, m := NewMock(t)
		m.interests.EXPECT().ShareContact(ctx, interest.ID, posterID).Return(interest, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), interest.ProviderID, notify.EventContactShared, gomock.Any()).Return(notify.ErrPoolFull)
		m.journal.EXPECT().Record(reconcile.Entry{
			Kind:    reconcile.KindSideEffect,
			Command: cmdShareContact + ":notify",
			Subject: interest.ProviderID.String(),
			Error:   notify.ErrPoolFull.Error(),
		}).Return(&reconcile.Entry{}, nil)

		got, err := service.ShareContact(ctx, interest.ID, posterID)
		require.NoError(t, err)
		assert.Equal(t, interest, got)
	})

	t.Run("failure has no side effects", func(t *testing.T) {
		service, m := NewMock(t)
		m.interests.EXPECT().ShareContact(ctx, interest.ID, posterID).Return(nil, domain.ErrWrongStatus)

		_, err := service.ShareContact(ctx, interest.ID, posterID)
		assert.ErrorIs(t, err, domain.ErrWrongStatus)
	})
}

func TestService_WithdrawInterest(t *testing.T) {
	ctx := context.Background()
	jobID, providerID, posterID := uuid.New(), uuid.New(), uuid.New()
	interest := &domain.Interest{ID: uuid.New(), JobID: jobID, ProviderID: providerID, Status: domain.InterestWithdrawn}

	tests := []struct {
		name   string
		actor  uuid.UUID
		setup  func(m *mocks)
		notify uuid.UUID
	}{
		{
			name:  "provider withdraws and the poster hears",
			actor: providerID,
			setup: func(m *mocks) {
				m.jobs.EXPECT().Get(gomock.Any(), jobID).Return(&domain.Job{ID: jobID, PosterID: posterID}, nil)
			},
			notify: posterID,
		},
		{
			name:   "poster withdraws and the provider hears",
			actor:  posterID,
			setup:  func(m *mocks) {},
			notify: providerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.interests.EXPECT().Withdraw(ctx, interest.ID, tt.actor).Return(interest, nil)
			tt.setup(m)
			m.notifier.EXPECT().Notify(gomock.Any(), tt.notify, notify.EventInterestWithdrawn, gomock.Any()).Return(nil)

			got, err := service.WithdrawInterest(ctx, interest.ID, tt.actor)
			require.NoError(t, err)
			assert.Equal(t, interest, got)
		})
	}
}

func TestService_CloseJob(t *testing.T) {
	ctx := context.Background()
	jobID, posterID := uuid.New(), uuid.New()
	p1, p2 := uuid.New(), uuid.New()

	t.Run("notifies every withdrawn provider", func(t *testing.T) {
		service, m := NewMock(t)
		m.interests.EXPECT().CloseJob(ctx, jobID, posterID).Return([]domain.Interest{
			{ID: uuid.New(), JobID: jobID, ProviderID: p1, Status: domain.InterestWithdrawn},
			{ID: uuid.New(), JobID: jobID, ProviderID: p2, Status: domain.InterestWithdrawn},
		}, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), p1, notify.EventInterestWithdrawn, gomock.Any()).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), p2, notify.EventInterestWithdrawn, gomock.Any()).Return(nil)

		n, err := service.CloseJob(ctx, jobID, posterID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("nothing to withdraw", func(t *testing.T) {
		service, m := NewMock(t)
		m.interests.EXPECT().CloseJob(ctx, jobID, posterID).Return(nil, nil)

		n, err := service.CloseJob(ctx, jobID, posterID)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("not the poster", func(t *testing.T) {
		service, m := NewMock(t)
		m.interests.EXPECT().CloseJob(ctx, jobID, p1).Return(nil, domain.ErrNotAuthorized)

		_, err := service.CloseJob(ctx, jobID, p1)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestService_SubmitQuote(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	jobID, providerID, posterID := uuid.New(), uuid.New(), uuid.New()
	quote := &domain.Quote{ID: uuid.New(), JobID: jobID, ProviderID: providerID, Price: 500, Status: domain.QuotePending}

	m.quotes.EXPECT().SubmitQuote(ctx, jobID, providerID, int64(500)).Return(quote, nil)
	m.jobs.EXPECT().Get(gomock.Any(), jobID).Return(&domain.Job{ID: jobID, PosterID: posterID}, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), posterID, notify.EventQuoteSubmitted, quotePayload(quote)).Return(nil)

	got, err := service.SubmitQuote(ctx, jobID, providerID, 500)
	require.NoError(t, err)
	assert.Equal(t, quote, got)

	m.quotes.EXPECT().SubmitQuote(ctx, jobID, providerID, int64(500)).Return(nil, domain.ErrQuoteLimitReached)
	_, err = service.SubmitQuote(ctx, jobID, providerID, 500)
	assert.ErrorIs(t, err, domain.ErrQuoteLimitReached)
}

func TestService_AcceptQuote(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	jobID, posterID := uuid.New(), uuid.New()
	accepted := &domain.Quote{ID: uuid.New(), JobID: jobID, ProviderID: uuid.New(), Status: domain.QuoteAccepted}
	rejected := []domain.Quote{
		{ID: uuid.New(), JobID: jobID, ProviderID: uuid.New(), Status: domain.QuoteRejected},
		{ID: uuid.New(), JobID: jobID, ProviderID: uuid.New(), Status: domain.QuoteRejected},
	}
	result := &quoteservice.AcceptResult{
		Accepted: accepted,
		Rejected: rejected,
		Job:      &domain.Job{ID: jobID, PosterID: posterID, Status: domain.JobInProgress},
	}

	m.quotes.EXPECT().AcceptQuote(ctx, accepted.ID, posterID).Return(result, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), accepted.ProviderID, notify.EventQuoteAccepted, gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), rejected[0].ProviderID, notify.EventQuoteRejected, gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), rejected[1].ProviderID, notify.EventQuoteRejected, gomock.Any()).Return(nil)

	got, err := service.AcceptQuote(ctx, accepted.ID, posterID)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestService_OpenConversation(t *testing.T) {
	ctx := context.Background()
	jobID, providerID, requester := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		setup     func(m *mocks)
		expectID  string
		expectErr error
	}{
		{
			name: "paid access opens the conversation",
			setup: func(m *mocks) {
				m.access.EXPECT().CanMessage(ctx, jobID, providerID, requester).Return(true, nil)
				m.conversations.EXPECT().Ensure(ctx, jobID, providerID).Return("conv-7", nil)
			},
			expectID: "conv-7",
		},
		{
			name: "no access",
			setup: func(m *mocks) {
				m.access.EXPECT().CanMessage(ctx, jobID, providerID, requester).Return(false, nil)
			},
			expectErr: domain.ErrNotAuthorized,
		},
		{
			name: "gate failure",
			setup: func(m *mocks) {
				m.access.EXPECT().CanMessage(ctx, jobID, providerID, requester).Return(false, domain.ErrNotFound)
			},
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.setup(m)

			id, err := service.OpenConversation(ctx, jobID, providerID, requester)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectID, id)
		})
	}
}

func TestService_DecideFunding(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	txn := &domain.Transaction{ID: uuid.New(), AccountID: accountID, Type: domain.TransactionFunding, AmountCoins: 100}

	t.Run("approve notifies the account", func(t *testing.T) {
		service, m := NewMock(t)
		m.wallet.EXPECT().ApproveFunding(ctx, txn.ID).Return(&walletservice.FundingResult{Transaction: txn}, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), accountID, notify.EventFundingApproved, map[string]string{
			"transaction_id": txn.ID.String(),
			"amount_coins":   "100",
		}).Return(nil)

		got, err := service.ApproveFunding(ctx, txn.ID)
		require.NoError(t, err)
		assert.False(t, got.Replayed)
	})

	t.Run("repeated approval stays quiet", func(t *testing.T) {
		service, m := NewMock(t)
		m.wallet.EXPECT().ApproveFunding(ctx, txn.ID).Return(&walletservice.FundingResult{Transaction: txn, Replayed: true}, nil)

		got, err := service.ApproveFunding(ctx, txn.ID)
		require.NoError(t, err)
		assert.True(t, got.Replayed)
	})

	t.Run("reject notifies the account", func(t *testing.T) {
		service, m := NewMock(t)
		m.wallet.EXPECT().RejectFunding(ctx, txn.ID).Return(&walletservice.FundingResult{Transaction: txn}, nil)
		m.notifier.EXPECT().Notify(gomock.Any(), accountID, notify.EventFundingRejected, gomock.Any()).Return(nil)

		_, err := service.RejectFunding(ctx, txn.ID)
		require.NoError(t, err)
	})

	t.Run("reject after approve", func(t *testing.T) {
		service, m := NewMock(t)
		m.wallet.EXPECT().RejectFunding(ctx, txn.ID).Return(nil, domain.ErrWrongStatus)

		_, err := service.RejectFunding(ctx, txn.ID)
		assert.ErrorIs(t, err, domain.ErrWrongStatus)
	})
}

func TestService_Passthrough(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	accountID, jobID, providerID := uuid.New(), uuid.New(), uuid.New()
	txn := &domain.Transaction{ID: uuid.New(), AccountID: accountID}

	m.wallet.EXPECT().RequestFunding(ctx, accountID, int64(50)).Return(txn, nil)
	m.wallet.EXPECT().Withdraw(ctx, accountID, int64(20)).Return(txn, nil)
	m.wallet.EXPECT().Balance(ctx, accountID).Return(int64(30), nil)
	m.wallet.EXPECT().History(ctx, accountID).Return([]domain.Transaction{*txn}, nil)
	m.interests.EXPECT().ListByJob(ctx, jobID, accountID).Return([]domain.Interest{}, nil)
	m.quotes.EXPECT().ListByJob(ctx, jobID, providerID).Return([]domain.Quote{}, nil)
	m.access.EXPECT().CanMessage(ctx, jobID, providerID, accountID).Return(true, nil)

	got, err := service.RequestFunding(ctx, accountID, 50)
	require.NoError(t, err)
	assert.Equal(t, txn, got)

	got, err = service.WithdrawFunds(ctx, accountID, 20)
	require.NoError(t, err)
	assert.Equal(t, txn, got)

	balance, err := service.Balance(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), balance)

	history, err := service.History(ctx, accountID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	interests, err := service.ListInterests(ctx, jobID, accountID)
	require.NoError(t, err)
	assert.Empty(t, interests)

	quotes, err := service.ListQuotes(ctx, jobID, providerID)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	ok, err := service.CanMessage(ctx, jobID, providerID, accountID)
	require.NoError(t, err)
	assert.True(t, ok)
}
