package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"

	internalclients "github.com/GlebRadaev/jobmart/internal/clients"
	"github.com/GlebRadaev/jobmart/internal/config"
	"github.com/GlebRadaev/jobmart/internal/handlers"
	"github.com/GlebRadaev/jobmart/internal/metrics"
	"github.com/GlebRadaev/jobmart/internal/notify"
	"github.com/GlebRadaev/jobmart/internal/pg"
	"github.com/GlebRadaev/jobmart/internal/reconcile"
	"github.com/GlebRadaev/jobmart/internal/repo"
	"github.com/GlebRadaev/jobmart/internal/service"
	"github.com/GlebRadaev/jobmart/pkg/auth"
	"github.com/GlebRadaev/jobmart/pkg/clients"
	"github.com/GlebRadaev/jobmart/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	pool     *pgxpool.Pool
	journal  *reconcile.Journal
	registry *prometheus.Registry

	workers *notify.PoolNotifier
	river   *river.Client[pgx.Tx]

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err := a.setup(ctx, cfg); err != nil {
		a.release()
		return err
	}

	if err := a.startNotifier(ctx); err != nil {
		a.release()
		return fmt.Errorf("can't start notifier: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("storage", cfg.Storage),
		zap.String("notify", cfg.NotifyBackend))
	return nil
}

// setup builds every component from cfg without starting any goroutine.
func (a *Application) setup(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(a.registry)

	journal, err := reconcile.Open(cfg.JournalPath)
	if err != nil {
		zap.L().Error("open reconciliation journal failed: ", zap.Error(err))
		return fmt.Errorf("can't open journal: %w", err)
	}
	a.journal = journal

	switch cfg.Storage {
	case config.StorageMemory:
		repos, jobs := repo.NewMemory()
		if err := seedJobs(cfg.JobsFile, jobs); err != nil {
			return fmt.Errorf("can't seed jobs: %w", err)
		}
		a.repo = repos
	default:
		pool, err := pg.Connect(ctx, cfg.Database)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		a.pool = pool
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
		a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	}

	httpClient := clients.NewHTTPClient()
	sender := notify.NewSender(cfg.NotifyAddress, httpClient)

	var notifier notify.Notifier
	if cfg.NotifyBackend == config.NotifyRiver {
		client, err := newRiverClient(ctx, a.pool, sender, journal, m, cfg.NotifyWorkers)
		if err != nil {
			zap.L().Error("river setup failed: ", zap.Error(err))
			return fmt.Errorf("can't set up river: %w", err)
		}
		a.river = client
		notifier = notify.NewRiverNotifier(client)
	} else {
		a.workers = notify.NewPoolNotifier(sender, notify.NewWorkerPool(cfg.NotifyWorkers), journal, m)
		notifier = a.workers
	}

	a.srv = service.New(a.repo, service.Externals{
		Users:         internalclients.NewUserClient(cfg.UsersAddress, httpClient),
		Conversations: internalclients.NewConversationClient(cfg.ConversationsAddress, httpClient),
		Notifier:      notifier,
		Journal:       journal,
		Metrics:       m,
	}, service.Options{
		QuoteLimit: cfg.QuoteLimit,
		Retries:    cfg.CommandRetries,
	})

	if cfg.AdminTokenHash == "" {
		zap.L().Warn("ADMIN_TOKEN_HASH is empty, admin routes are disabled")
	}
	a.api = handlers.New(a.srv, handlers.Options{
		Guard:       auth.NewMiddleware(auth.NewJWTService(cfg.JWTSecret), &auth.HashService{}, cfg.AdminTokenHash),
		Metrics:     promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
		CORSOrigins: cfg.CORSOrigins,
		CoinRate:    cfg.CoinRate,
	})
	return nil
}

func newRiverClient(
	ctx context.Context,
	pool *pgxpool.Pool,
	sender notify.Deliverer,
	journal notify.Journal,
	recorder notify.Recorder,
	maxWorkers int,
) (*river.Client[pgx.Tx], error) {
	if pool == nil {
		return nil, errors.New("river needs postgres storage")
	}
	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create river migrator: %w", err)
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		return nil, fmt.Errorf("river migrate up failed: %w", err)
	}

	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	workers := river.NewWorkers()
	river.AddWorker(workers, notify.NewNotificationWorker(sender, journal, recorder))

	return river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
	})
}

func (a *Application) startNotifier(ctx context.Context) error {
	if a.river == nil {
		return nil
	}
	return a.river.Start(ctx)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.stopNotifier(sCtx)
		a.release()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// stopNotifier drains pending deliveries before storage goes away.
func (a *Application) stopNotifier(ctx context.Context) {
	if a.river != nil {
		if err := a.river.Stop(ctx); err != nil {
			zap.L().Error("river stop failed", zap.Error(err))
		}
	}
	if a.workers != nil {
		a.workers.Close()
	}
}

func (a *Application) release() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			zap.L().Error("journal close failed", zap.Error(err))
		}
		a.journal = nil
	}
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
