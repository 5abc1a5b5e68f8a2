// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/gamedash/internal/adapters/api"
	redis_a "github.com/ammerola/gamedash/internal/adapters/redis_adapter"
	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
	"github.com/ammerola/gamedash/internal/core/services"
	"github.com/ammerola/gamedash/internal/pkg/config"
	"github.com/ammerola/gamedash/internal/pkg/logger"
	"github.com/ammerola/gamedash/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()
	log := slogger.Logger

	var cache ports.CacheRepository = redis_a.NopCache{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.GetRedisAddress(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slogger.Error("failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, log)
	}
	invalidator := redis_a.NewCacheManager(cache, log)

	client := api.NewClient(api.Config{
		BaseURL:           cfg.Backend.BaseURL,
		Timeout:           cfg.Backend.RequestTimeout,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
	}, log)

	// Queued syncs never overlap, so a late duplicate waits for a retry
	orchestrator := services.NewOrchestrator(client, log,
		services.WithPollInterval(cfg.Sync.PollInterval),
		services.WithMaxDuration(cfg.Sync.MaxDuration),
		services.WithDefaultLimit(cfg.Sync.DefaultLimit),
		services.WithStartPolicy(services.RejectConcurrent),
		services.WithInvalidator(invalidator),
	)
	dashboard := services.NewDashboardService(client, cache, cfg.Redis.TTL, log)
	catalog := services.NewCatalogService(client, cache, invalidator, cfg.Pagination.FetchPageSize, log)
	sales := services.NewSalesService(client, client, invalidator, cfg.Pagination.FetchPageSize, log)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:     cfg.Asynq.Concurrency,
		Queues:          cfg.Asynq.Queues,
		StrictPriority:  cfg.Asynq.StrictPriority,
		ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
		RetryDelayFunc:  exponentialBackoff,
		ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc: healthCheck,
		Logger:          newAsynqLogger(log),
	})

	mux := asynq.NewServeMux()

	syncProcessor := workers.NewSyncProcessor(orchestrator, asynqClient, log)
	if cfg.Export.SnapshotAfterSync {
		for _, kind := range []domain.RecordKind{domain.KindGame, domain.KindSale} {
			task, err := workers.NewExportSnapshotTask(kind)
			if err != nil {
				slogger.Error("failed to build snapshot task", slog.String("error", err.Error()))
				os.Exit(1)
			}
			syncProcessor.AfterSync(task)
		}
	}
	mux.HandleFunc(workers.TypeSyncGames, syncProcessor.ProcessSync)

	dashboardProcessor := workers.NewDashboardProcessor(dashboard, log)
	mux.HandleFunc(workers.TypeWarmDashboard, dashboardProcessor.WarmDashboard)

	exportProcessor := workers.NewExportProcessor(cfg.Export.Dir, catalog, sales, log)
	mux.HandleFunc(workers.TypeExportSnapshot, exportProcessor.ProcessSnapshot)

	cleanupProcessor := workers.NewCleanupProcessor(cfg.Export.Dir, cfg.Export.Retention, log)
	mux.HandleFunc(workers.TypePruneExports, cleanupProcessor.PruneExports)

	scheduler, err := newScheduler(redisOpt, cfg, log)
	if err != nil {
		slogger.Error("failed to register scheduled tasks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("failed to run scheduler", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.Bool("scheduled_sync", cfg.Sync.ScheduleEnabled),
		slog.String("export_dir", cfg.Export.Dir))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	orchestrator.Cancel()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// newScheduler registers export pruning and, when enabled, the periodic
// sync:games task
func newScheduler(redisOpt asynq.RedisClientOpt, cfg *config.Config, logger *slog.Logger) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: newAsynqLogger(logger),
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				logger.Warn("scheduled task not enqueued", slog.String("error", err.Error()))
				return
			}
			logger.Info("scheduled task enqueued",
				slog.String("type", info.Type),
				slog.String("task_id", info.ID))
		},
	})

	if cfg.Export.Retention > 0 && cfg.Export.PruneCron != "" {
		entryID, err := scheduler.Register(cfg.Export.PruneCron, workers.NewPruneExportsTask())
		if err != nil {
			return nil, fmt.Errorf("invalid prune schedule %q: %w", cfg.Export.PruneCron, err)
		}
		logger.Info("export pruning registered",
			slog.String("entry_id", entryID),
			slog.String("cron", cfg.Export.PruneCron))
	}

	if !cfg.Sync.ScheduleEnabled {
		return scheduler, nil
	}

	req := domain.SyncRequest{Limit: cfg.Sync.DefaultLimit, All: cfg.Sync.ScheduleAll}
	task, err := workers.NewSyncTask(req, cfg.Sync.MaxDuration)
	if err != nil {
		return nil, err
	}

	entryID, err := scheduler.Register(cfg.Sync.ScheduleCron, task)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", cfg.Sync.ScheduleCron, err)
	}

	logger.Info("scheduled sync registered",
		slog.String("entry_id", entryID),
		slog.String("cron", cfg.Sync.ScheduleCron),
		slog.Bool("all", req.All))
	return scheduler, nil
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
