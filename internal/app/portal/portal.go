package portal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/peterbuiltwl/portal/internal/api"
	"github.com/peterbuiltwl/portal/internal/core/ports"
	"github.com/peterbuiltwl/portal/internal/core/query"
	"github.com/peterbuiltwl/portal/internal/core/service"
	"github.com/peterbuiltwl/portal/internal/infrastructure/backend"
	"github.com/peterbuiltwl/portal/internal/infrastructure/db/mongo"
	"github.com/peterbuiltwl/portal/internal/infrastructure/db/redis"
	"github.com/peterbuiltwl/portal/internal/infrastructure/http/handlers"
	"github.com/peterbuiltwl/portal/internal/infrastructure/memory"
	"github.com/peterbuiltwl/portal/internal/infrastructure/queue"
	"github.com/peterbuiltwl/portal/internal/pkg/config"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

type App struct {
	server     *http.Server
	echo       *echo.Echo
	logger     zerolog.Logger
	dispatcher *queue.Dispatcher
	stress     *service.StressTestService
	redis      *goredis.Client
	archive    *mongo.Archive
}

// New connects the optional stores, builds the services and the router.
// Without REDIS_ADDR or MONGO_URI the in-memory stores are used; without
// BACKEND_URL an in-process fake backend serves every call.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{logger: logger}
	checks := map[string]handlers.Check{}

	var (
		store  ports.QueryStore       = memory.NewQueryStore()
		wizard ports.WizardRepository = memory.NewWizardRepository()
		lock   ports.CheckoutLock     = memory.NewCheckoutLock()
		report ports.ReportRepository = memory.NewReportRepository()
		client ports.BackendClient
	)

	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  connectTimeout,
		})
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		store = redis.NewQueryStore(rdb)
		wizard = redis.NewWizardRepository(rdb)
		lock = redis.NewCheckoutLock(rdb)
		checks["redis"] = handlers.RedisCheck(rdb)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	if cfg.Mongo.URI != "" {
		archive, err := mongo.Open(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  connectTimeout,
		})
		if err != nil {
			a.closeStores(ctx)
			return nil, err
		}
		a.archive = archive
		reports, err := archive.Reports(ctx)
		if err != nil {
			a.closeStores(ctx)
			return nil, err
		}
		report = reports
		checks["mongo"] = handlers.MongoCheck(archive.DB)
		logger.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")
	}

	if cfg.Backend.URL != "" {
		client = backend.NewHTTPClient(backend.Config{BaseURL: cfg.Backend.URL, APIKey: cfg.Backend.APIKey})
	} else {
		logger.Warn().Msg("BACKEND_URL not set, serving from the in-process fake backend")
		client = backend.NewFake(cfg.PublicBaseURL)
	}
	checks["backend"] = handlers.ReadyCheck(client)

	queries := query.NewClient(store, client, cfg.Redis.CacheTTL, logger.With().Str("component", "query").Logger())
	a.dispatcher = queue.NewDispatcher(cfg.StressTest.Workers, logger.With().Str("component", "dispatcher").Logger())

	profiles := service.NewProfileService(client, queries, logger)
	catalog := service.NewCatalogService(client, queries, logger)
	checkout := service.NewCheckoutService(client, queries, lock, logger)
	a.stress = service.NewStressTestService(client, queries, report, a.dispatcher, cfg.StressTest.TimeScale, logger)

	svc := api.Services{
		Sessions:    service.NewSessionService(client, queries, wizard, cfg.Session.Secret, cfg.Session.TTL, logger),
		Profiles:    profiles,
		Catalog:     catalog,
		Checkout:    checkout,
		Wizards:     service.NewWizardService(wizard, client, queries, checkout, cfg.PublicBaseURL, logger),
		StressTests: a.stress,
		Library:     service.NewLibraryService(client, queries, logger),
		Dashboards:  service.NewDashboardService(profiles, logger),
	}

	a.echo = api.NewRouter(svc, api.Options{
		Logger:       logger,
		RateLimitRPS: cfg.RateLimitRPS,
		SecureCookie: cfg.IsProduction(),
		Checks:       checks,
	})

	a.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.echo,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return a, nil
}

// Run serves HTTP and the stress-test workers until ctx is cancelled, then
// shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	a.dispatcher.Start(workerCtx, a.stress)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.server.Addr).Msg("HTTP server starting")
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		stopWorkers()
		a.dispatcher.Wait()
		a.closeStores(context.Background())
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info().Msg("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		stopWorkers()
		a.dispatcher.Wait()
		a.closeStores(timeoutCtx)
		return err
	}
}

func (a *App) closeStores(ctx context.Context) {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("redis close")
		}
	}
	if a.archive != nil {
		if err := a.archive.Close(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("mongo disconnect")
		}
	}
}
