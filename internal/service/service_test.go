package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/repo"
	"github.com/GlebRadaev/jobmart/internal/service/engagementservice"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos, _ := repo.NewMemory()
	metrics := engagementservice.NewMockMetrics(ctrl)
	notifier := notify.NewMockNotifier(ctrl)

	services := New(repos, Externals{
		Users:         quoteservice.NewMockUserClient(ctrl),
		Conversations: engagementservice.NewMockConversations(ctrl),
		Notifier:      notifier,
		Journal:       engagementservice.NewMockJournal(ctrl),
		Metrics:       metrics,
	}, Options{QuoteLimit: quoteservice.DefaultLimit, Retries: engagementservice.DefaultRetries})

	assert.NotNil(t, services.Engagement)
	assert.Same(t, services.Engagement, services.InterestService)
	assert.Same(t, services.Engagement, services.QuoteService)
	assert.Same(t, services.Engagement, services.ConversationService)
	assert.Same(t, services.Engagement, services.WalletService)
	assert.Same(t, services.Engagement, services.AdminService)

	ctx := context.Background()
	accountID := uuid.New()

	metrics.EXPECT().ObserveCommand("request_funding", "ok", gomock.Any())
	metrics.EXPECT().ObserveCommand("approve_funding", "ok", gomock.Any())
	notifier.EXPECT().Notify(gomock.Any(), accountID, notify.EventFundingApproved, gomock.Any()).Return(nil)

	txn, err := services.WalletService.RequestFunding(ctx, accountID, 40)
	require.NoError(t, err)
	_, err = services.AdminService.ApproveFunding(ctx, txn.ID)
	require.NoError(t, err)

	balance, err := services.WalletService.Balance(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), balance)
}
