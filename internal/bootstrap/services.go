package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/gencertify/gencertify/config"
	"github.com/gencertify/gencertify/internal/adapters/blobstore"
	"github.com/gencertify/gencertify/internal/adapters/provider"
	redisstore "github.com/gencertify/gencertify/internal/adapters/redis"
	"github.com/gencertify/gencertify/internal/adapters/worker"
	"github.com/gencertify/gencertify/internal/data"
	"github.com/gencertify/gencertify/internal/domain/job"
	"github.com/gencertify/gencertify/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Evaluations   *service.EvaluationService
	Documents     *service.DocumentService
	Organizations *service.OrganizationService
	Chat          *service.ChatService

	// Pool is the background worker pool driving evaluation and document
	// runs. Nil when the worker service is disabled.
	Pool *worker.Pool
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	EvaluationRepo   *data.EvaluationRepo
	DocumentRepo     *data.DocumentRepo
	OrganizationRepo *data.OrganizationRepo
	ChatStore        *redisstore.ChatSessionStore
	Blobs            *blobstore.Filesystem
}

func buildRepositories(deps *ServiceDeps) (*serviceRepositories, error) {
	blobs, err := blobstore.NewFilesystem(blobstore.Options{
		Root:    deps.Config.Storage.FilesDir,
		BaseURL: deps.Config.Storage.FilesBaseURL,
		Logger:  deps.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init blob store: %w", err)
	}

	return &serviceRepositories{
		EvaluationRepo:   data.NewEvaluationRepo(deps.DB),
		DocumentRepo:     data.NewDocumentRepo(deps.DB),
		OrganizationRepo: data.NewOrganizationRepo(deps.DB),
		ChatStore:        redisstore.NewChatSessionStoreWithTTL(deps.RedisClient, deps.Config.Chat.SessionTTL),
		Blobs:            blobs,
	}, nil
}

// NewServices wires repositories, the worker pool, the model provider, and
// the services together.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos, err := buildRepositories(deps)
	if err != nil {
		return ServiceContainer{}, err
	}

	modelProvider, err := provider.New(provider.Config{
		Name:    deps.Config.AI.Provider,
		APIKey:  deps.Config.AI.APIKey,
		Model:   deps.Config.AI.Model,
		BaseURL: deps.Config.AI.BaseURL,
		Timeout: deps.Config.AI.Timeout,
	}, logger)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("init model provider: %w", err)
	}

	pool := worker.NewPool(worker.Options{
		Workers:   deps.Config.Worker.Concurrency,
		QueueSize: deps.Config.Worker.QueueSize,
		Logger:    logger,
	})

	tracker := job.NewTracker()

	evaluations, err := service.NewEvaluationService(service.EvaluationServiceOptions{
		Repo:     repos.EvaluationRepo,
		Orgs:     repos.OrganizationRepo,
		Provider: modelProvider,
		Queue:    pool,
		Tracker:  tracker,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("init evaluation service: %w", err)
	}

	documents, err := service.NewDocumentService(service.DocumentServiceOptions{
		Repo:        repos.DocumentRepo,
		Evaluations: repos.EvaluationRepo,
		Orgs:        repos.OrganizationRepo,
		Provider:    modelProvider,
		Blobs:       repos.Blobs,
		Queue:       pool,
		Tracker:     tracker,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("init document service: %w", err)
	}

	organizations, err := service.NewOrganizationService(service.OrganizationServiceOptions{
		Repo:   repos.OrganizationRepo,
		Logger: logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("init organization service: %w", err)
	}

	chat, err := service.NewChatService(service.ChatServiceOptions{
		Sessions: repos.ChatStore,
		Provider: modelProvider,
		Orgs:     repos.OrganizationRepo,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("init chat service: %w", err)
	}

	return ServiceContainer{
		Evaluations:   evaluations,
		Documents:     documents,
		Organizations: organizations,
		Chat:          chat,
		Pool:          pool,
	}, nil
}

// ServiceOrchestrationConfig groups dependencies for running services until
// shutdown.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the enabled services and blocks until a
// termination signal arrives, then shuts everything down in order: HTTP
// server first so no new jobs arrive, then the worker pool so queued jobs
// drain.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Config.IsWorkerEnabled() {
		cfg.Services.Pool.Start(ctx)
		logger.Info("worker pool started",
			"workers", cfg.Config.Worker.Concurrency,
			"queue_size", cfg.Config.Worker.QueueSize)
	}

	var server *http.Server
	if cfg.Config.IsHTTPServerEnabled() {
		server = StartHTTPServer(&HTTPServerConfig{
			Config:   cfg.Config,
			Services: cfg.Services,
			Logger:   logger,
		})
	}

	<-ctx.Done()
	logger.Info("shutdown signal received")

	var shutdownErr error
	if server != nil {
		shutdownErr = ShutdownHTTPServer(ShutdownConfig{
			Context: context.Background(),
			Server:  server,
			Timeout: cfg.Config.HTTP.ShutdownTimeout,
			Logger:  logger,
		})
	}

	if cfg.Config.IsWorkerEnabled() {
		logger.Info("draining worker pool")
		cfg.Services.Pool.Stop()
		logger.Info("worker pool stopped")
	}

	return shutdownErr
}
