package service

import (
	"github.com/GlebRadaev/jobmart/internal/handlers/admin"
	"github.com/GlebRadaev/jobmart/internal/handlers/conversations"
	"github.com/GlebRadaev/jobmart/internal/handlers/interests"
	"github.com/GlebRadaev/jobmart/internal/handlers/quotes"
	"github.com/GlebRadaev/jobmart/internal/handlers/wallet"
	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/repo"
	"github.com/GlebRadaev/jobmart/internal/service/accessservice"
	"github.com/GlebRadaev/jobmart/internal/service/engagementservice"
	"github.com/GlebRadaev/jobmart/internal/service/interestservice"
	"github.com/GlebRadaev/jobmart/internal/service/quoteservice"
	"github.com/GlebRadaev/jobmart/internal/service/walletservice"
)

// Externals are the collaborators that live outside this process or outside
// the storage layer.
type Externals struct {
	Users         quoteservice.UserClient
	Conversations engagementservice.Conversations
	Notifier      notify.Notifier
	Journal       engagementservice.Journal
	Metrics       engagementservice.Metrics
}

type Options struct {
	QuoteLimit int
	Retries    int
}

type Services struct {
	Engagement          *engagementservice.Service
	InterestService     interests.Service
	QuoteService        quotes.Service
	ConversationService conversations.Service
	WalletService       wallet.Service
	AdminService        admin.Service
}

func New(repos *repo.Repositories, ext Externals, opts Options) *Services {
	walletService := walletservice.New(repos.WalletRepo, repos.TxManager)
	interestService := interestservice.New(repos.InterestRepo, repos.JobRepo, walletService, repos.TxManager)
	quoteService := quoteservice.New(repos.QuoteRepo, repos.JobRepo, ext.Users, repos.TxManager, opts.QuoteLimit)
	accessService := accessservice.New(repos.InterestRepo, repos.JobRepo)

	engagement := engagementservice.New(engagementservice.Deps{
		Interests:     interestService,
		Quotes:        quoteService,
		Access:        accessService,
		Wallet:        walletService,
		Jobs:          repos.JobRepo,
		Conversations: ext.Conversations,
		Notifier:      ext.Notifier,
		Journal:       ext.Journal,
		Metrics:       ext.Metrics,
	}, opts.Retries)

	return &Services{
		Engagement:          engagement,
		InterestService:     engagement,
		QuoteService:        engagement,
		ConversationService: engagement,
		WalletService:       engagement,
		AdminService:        engagement,
	}
}
