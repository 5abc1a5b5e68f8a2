// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/gamedash/internal/adapters/api"
	redis_a "github.com/ammerola/gamedash/internal/adapters/redis_adapter"
	"github.com/ammerola/gamedash/internal/core/ports"
	"github.com/ammerola/gamedash/internal/core/services"
	"github.com/ammerola/gamedash/internal/handlers"
	"github.com/ammerola/gamedash/internal/pkg/config"
	"github.com/ammerola/gamedash/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting gamedash gateway",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if Version != "dev" {
		cfg.App.Version = Version
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handlers.NewRouter(ctx, deps.routes, cfg, slogger),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		if deps.orchestrator.Cancel() {
			slogger.Info("running sync cancelled")
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	redisClient    *redis.Client
	asynqInspector *asynq.Inspector
	orchestrator   *services.Orchestrator
	routes         handlers.Routes
}

func (d *dependencies) cleanup() {
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	var cache ports.CacheRepository = redis_a.NopCache{}
	if cfg.Redis.Enabled {
		logger.Info("connecting to Redis",
			slog.String("host", cfg.Redis.Host),
			slog.String("port", cfg.Redis.Port),
		)

		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.GetRedisAddress(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		deps.redisClient = redisClient
		cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

		// The worker shares the Redis server; its queues show up in /health
		deps.asynqInspector = asynq.NewInspector(asynq.RedisClientOpt{
			Addr:     cfg.Asynq.RedisAddr,
			Password: cfg.Asynq.RedisPassword,
			DB:       cfg.Asynq.RedisDB,
		})
	} else {
		logger.Warn("redis disabled, responses will not be cached")
	}
	invalidator := redis_a.NewCacheManager(cache, logger)

	client := api.NewClient(api.Config{
		BaseURL:           cfg.Backend.BaseURL,
		Timeout:           cfg.Backend.RequestTimeout,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
	}, logger)

	catalog := services.NewCatalogService(client, cache, invalidator, cfg.Pagination.FetchPageSize, logger)
	sales := services.NewSalesService(client, client, invalidator, cfg.Pagination.FetchPageSize, logger)
	dashboard := services.NewDashboardService(client, cache, cfg.Redis.TTL, logger)

	deps.orchestrator = services.NewOrchestrator(client, logger, orchestratorOptions(cfg, invalidator)...)

	deps.routes = handlers.Routes{
		Games:     handlers.NewGamesHandler(catalog, cfg.Pagination.PageSize, logger),
		Sales:     handlers.NewSalesHandler(sales, cfg.Pagination.PageSize, logger),
		Sync:      handlers.NewSyncHandler(deps.orchestrator, client, logger),
		Dashboard: handlers.NewDashboardHandler(dashboard, logger),
		Health:    handlers.NewHealthHandler(client, cache, deps.asynqInspector, deps.orchestrator, cfg, logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func orchestratorOptions(cfg *config.Config, invalidator ports.CacheInvalidator) []services.OrchestratorOption {
	policy := services.ReplacePrior
	if cfg.Sync.RejectConcurrent {
		policy = services.RejectConcurrent
	}
	return []services.OrchestratorOption{
		services.WithPollInterval(cfg.Sync.PollInterval),
		services.WithMaxDuration(cfg.Sync.MaxDuration),
		services.WithDefaultLimit(cfg.Sync.DefaultLimit),
		services.WithStartPolicy(policy),
		services.WithInvalidator(invalidator),
	}
}
