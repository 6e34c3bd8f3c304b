package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	internalclients "github.com/GlebRadaev/jobmart/internal/clients"
	"github.com/GlebRadaev/jobmart/internal/metrics"
	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/pg"
	"github.com/GlebRadaev/jobmart/internal/reconcile"
	"github.com/GlebRadaev/jobmart/internal/repo"
	"github.com/GlebRadaev/jobmart/internal/service"
	"github.com/GlebRadaev/jobmart/pkg/clients"
)

// logJournal stands in when the server holds the journal file lock. Entries
// end up in the log for the operator to replay by hand.
type logJournal struct{}

func (logJournal) Record(entry reconcile.Entry) (*reconcile.Entry, error) {
	zap.L().Error("Reconciliation entry not journaled, journal is locked",
		zap.String("kind", string(entry.Kind)),
		zap.String("command", entry.Command),
		zap.String("subject", entry.Subject),
		zap.String("error", entry.Error))
	return &entry, nil
}

type journal interface {
	Record(entry reconcile.Entry) (*reconcile.Entry, error)
}

// openServices connects to the deployment database and builds the same
// services the server runs. The returned func drains notifications and
// releases every resource.
func openServices(ctx context.Context) (*service.Services, func(), error) {
	pool, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("can't connect to database: %w", err)
	}

	var j journal = logJournal{}
	bolt, err := reconcile.Open(cfg.JournalPath)
	if err != nil {
		zap.L().Warn("Journal unavailable, falling back to the log", zap.Error(err))
	} else {
		j = bolt
	}

	m := metrics.New(prometheus.NewRegistry())
	httpClient := clients.NewHTTPClient()
	notifier := notify.NewPoolNotifier(
		notify.NewSender(cfg.NotifyAddress, httpClient),
		notify.NewWorkerPool(1),
		j, m,
	)

	repos := repo.New(pg.New(pool), pg.NewTXManager(pool))
	services := service.New(repos, service.Externals{
		Users:         internalclients.NewUserClient(cfg.UsersAddress, httpClient),
		Conversations: internalclients.NewConversationClient(cfg.ConversationsAddress, httpClient),
		Notifier:      notifier,
		Journal:       j,
		Metrics:       m,
	}, service.Options{QuoteLimit: cfg.QuoteLimit, Retries: cfg.CommandRetries})

	closeFn := func() {
		notifier.Close()
		if bolt != nil {
			if err := bolt.Close(); err != nil {
				zap.L().Error("journal close failed", zap.Error(err))
			}
		}
		pool.Close()
	}
	return services, closeFn, nil
}
