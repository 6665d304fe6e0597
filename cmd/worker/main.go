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

	"github.com/ammerola/kasir-rental/internal/adapters/backend"
	"github.com/ammerola/kasir-rental/internal/adapters/db"
	redis_a "github.com/ammerola/kasir-rental/internal/adapters/redis_adapter"
	"github.com/ammerola/kasir-rental/internal/adapters/storage"
	"github.com/ammerola/kasir-rental/internal/core/ports"
	"github.com/ammerola/kasir-rental/internal/core/services"
	"github.com/ammerola/kasir-rental/internal/pkg/config"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
	"github.com/ammerola/kasir-rental/internal/workers"
)

func main() {
	// Setup logger
	slogger := logger.SetupLogger("info", "json")

	// Load configuration
	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	log := slogger.Logger
	log.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	// The journal is optional; without it reports skip the checkouts sheet
	// and no cleanup is scheduled
	var journal ports.CheckoutJournal
	if cfg.Database.Enabled {
		database, err := initDatabase(ctx, cfg, log)
		if err != nil {
			log.Error("failed to initialize database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.Close()
		journal = db.NewJournalRepository(database, log)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, log)

	reportStorage, err := storage.NewS3Storage(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
		CreateBucket:    !cfg.IsProduction(),
	}, log)
	if err != nil {
		log.Error("failed to initialize report storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rentalBackend := backend.NewClient(&backend.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		RateLimit: cfg.Backend.RateLimit,
		Burst:     cfg.Backend.Burst,
	}, log)
	rentalService := services.NewRentalService(rentalBackend, cache, log)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	// Create Asynq server
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:     cfg.Asynq.Concurrency,
			Queues:          cfg.Asynq.Queues,
			StrictPriority:  cfg.Asynq.StrictPriority,
			ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
			RetryDelayFunc:  exponentialBackoff,
			ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
			HealthCheckFunc: healthCheck,
			Logger:          newAsynqLogger(log),
		},
	)

	// Create task handlers
	mux := asynq.NewServeMux()

	reportProcessor := workers.NewReportProcessor(rentalService, journal, reportStorage, cache, workers.ReportOptions{
		PresignTTL: cfg.Reports.PresignTTL,
		ResultTTL:  cfg.Reports.ResultTTL,
	}, log)
	mux.HandleFunc(workers.TypeOpenRentalsReport, reportProcessor.ProcessOpenRentalsReport)

	var scheduler *asynq.Scheduler
	if journal != nil {
		cleanupProcessor := workers.NewCleanupProcessor(journal, cfg.Reports.JournalRetention, log)
		mux.HandleFunc(workers.TypeJournalCleanup, cleanupProcessor.CleanupJournal)

		if cfg.Asynq.CleanupSchedule != "" {
			scheduler = asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
				Logger: newAsynqLogger(log),
			})
			entryID, err := scheduler.Register(cfg.Asynq.CleanupSchedule, workers.NewJournalCleanupTask(),
				asynq.Queue(lowestQueue(cfg.Asynq.Queues)), asynq.MaxRetry(cfg.Asynq.RetryMax))
			if err != nil {
				log.Error("failed to schedule journal cleanup",
					slog.String("schedule", cfg.Asynq.CleanupSchedule),
					slog.String("error", err.Error()))
				os.Exit(1)
			}
			log.Info("journal cleanup scheduled",
				slog.String("entry_id", entryID),
				slog.String("schedule", cfg.Asynq.CleanupSchedule),
				slog.Duration("retention", cfg.Reports.JournalRetention))
		}
	}

	// Handle shutdown gracefully
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	if scheduler != nil {
		if err := scheduler.Start(); err != nil {
			log.Error("failed to start scheduler", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	log.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.Bool("journal", journal != nil))

	// Wait for shutdown signal
	sig := <-shutdown
	log.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Gracefully shutdown
	if scheduler != nil {
		scheduler.Shutdown()
	}
	srv.Shutdown()
	log.Info("worker shutdown complete")
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	dbConfig := &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     4, // the worker only reads recent checkouts and prunes
		MinConnections:     1,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}

	return db.NewDatabase(ctx, dbConfig, logger)
}

// lowestQueue picks the lowest priority queue for housekeeping tasks
func lowestQueue(queues map[string]int) string {
	name, best := "default", -1
	for q, prio := range queues {
		if best == -1 || prio < best || (prio == best && q < name) {
			name, best = q, prio
		}
	}
	return name
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.Int("retried", retried),
		slog.Int("max_retry", maxRetry),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay || delay <= 0 {
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
