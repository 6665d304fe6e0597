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

	"github.com/ammerola/kasir-rental/internal/adapters/backend"
	"github.com/ammerola/kasir-rental/internal/adapters/db"
	redis_a "github.com/ammerola/kasir-rental/internal/adapters/redis_adapter"
	"github.com/ammerola/kasir-rental/internal/core/ports"
	"github.com/ammerola/kasir-rental/internal/core/services"
	"github.com/ammerola/kasir-rental/internal/handlers"
	"github.com/ammerola/kasir-rental/internal/pkg/config"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
	"github.com/ammerola/kasir-rental/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting kasir-rental point of sale api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	// Load configuration
	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.App.Version == "" || cfg.App.Version == "dev" {
		cfg.App.Version = Version
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	ctx := context.Background()

	// Run journal migrations before the pool starts serving
	if cfg.Database.Enabled {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			if cfg.IsProduction() {
				os.Exit(1)
			}
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	cache          *redis_a.Cache
	backend        ports.RentalBackend
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	handlers       handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	// The checkout journal is optional; checkouts still commit without it
	var journal ports.CheckoutJournal
	var database ports.Database
	if cfg.Database.Enabled {
		logger.Info("connecting to journal database",
			slog.String("host", cfg.Database.Host),
			slog.String("database", cfg.Database.Name),
		)

		d, err := db.NewDatabase(ctx, databaseConfig(cfg), logger)
		if err != nil {
			deps.cleanup()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		deps.database = d
		database = d
		journal = db.NewJournalRepository(d, logger)
	} else {
		logger.Warn("checkout journal disabled")
	}

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(redisOptions(cfg))
	deps.redisClient = redisClient
	if err := redisClient.Ping(ctx).Err(); err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	deps.cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)
	shiftStore := redis_a.NewShiftStore(redisClient, cfg.Redis.ShiftTTL, logger)

	deps.backend = backend.NewClient(&backend.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		RateLimit: cfg.Backend.RateLimit,
		Burst:     cfg.Backend.Burst,
	}, logger)

	logger.Info("initializing Asynq client")
	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Services
	catalogService := services.NewCatalogService(deps.backend, deps.cache, cfg.Redis.ListTTL, logger)
	shiftService := services.NewShiftService(shiftStore, deps.backend, logger)
	checkoutService := services.NewCheckoutService(deps.backend, journal, deps.cache, logger)
	rentalService := services.NewRentalService(deps.backend, deps.cache, logger)
	reportQueue := workers.NewReportQueue(deps.asynqClient, deps.asynqInspector, deps.cache, workers.QueueOptions{
		Queue:     reportQueueName(cfg),
		MaxRetry:  cfg.Asynq.RetryMax,
		Timeout:   cfg.Reports.Timeout,
		Retention: cfg.Reports.ResultTTL,
	}, logger)

	deps.handlers = handlers.Handlers{
		Health: handlers.NewHealthHandler(handlers.HealthDeps{
			Database:  database,
			Redis:     redisClient,
			Cache:     deps.cache,
			Backend:   deps.backend,
			Inspector: deps.asynqInspector,
		}, cfg, logger),
		Catalog:  handlers.NewCatalogHandler(catalogService, shiftService, logger),
		Shift:    handlers.NewShiftHandler(shiftService, logger),
		Checkout: handlers.NewCheckoutHandler(checkoutService, shiftService, logger),
		Rentals:  handlers.NewRentalHandler(rentalService, shiftService, logger),
		Reports:  handlers.NewReportHandler(reportQueue, shiftService, logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, log *logger.Logger) *http.Server {
	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handlers.NewRouter(deps.handlers, cfg, log),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
}

func databaseConfig(cfg *config.Config) *db.Config {
	return &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}
}

func redisOptions(cfg *config.Config) *redis.Options {
	return &redis.Options{
		Addr:            cfg.GetRedisAddr(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	}
}

// reportQueueName prefers a dedicated "reports" queue when the worker serves one
func reportQueueName(cfg *config.Config) string {
	if _, ok := cfg.Asynq.Queues["reports"]; ok {
		return "reports"
	}
	return "default"
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, logger, 3)
}
