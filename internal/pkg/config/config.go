// internal/pkg/config/config.go
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingRequiredConfig marks a required setting that is empty or still a placeholder
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Asynq    AsynqConfig
	AWS      AWSConfig
	Reports  ReportsConfig
	Secrets  SecretsConfig
	Security SecurityConfig
	Server   ServerConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `required:"true"`
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// BackendConfig points at the rental backend REST API
type BackendConfig struct {
	BaseURL   string `required:"true"`
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables the limiter
	Burst     int
}

// DatabaseConfig holds the checkout journal database configuration
type DatabaseConfig struct {
	Enabled            bool
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxConnections     int32
	MinConnections     int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	ConnectTimeout     time.Duration
	StatementCacheMode string
	EnableQueryLogging bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host            string `required:"true"`
	Port            string `required:"true"`
	Password        string
	DB              int
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	TTL             time.Duration
	ListTTL         time.Duration // stores and staff
	ShiftTTL        time.Duration // 0 keeps a shift until it is ended
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	Concurrency         int
	Queues              map[string]int // queue name -> priority
	StrictPriority      bool
	RetryMax            int
	ShutdownTimeout     time.Duration
	HealthCheckInterval time.Duration
	CleanupSchedule     string
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string // For MinIO in development
	UsePathStyle    bool   // For MinIO compatibility
}

// ReportsConfig controls generated reports and journal retention
type ReportsConfig struct {
	JournalRetention time.Duration
	PresignTTL       time.Duration
	ResultTTL        time.Duration
	Timeout          time.Duration
}

// SecretsConfig selects where secrets are overlaid from
type SecretsConfig struct {
	Provider   string // env, aws
	SecretName string
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimitRequests int
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	TrustedProxies    []string
	SecureHeaders     bool
	RequestIDHeader   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string `required:"true"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxHeaderBytes  int
	GracefulTimeout time.Duration
	EnablePprof     bool
	TLSEnabled      bool
	TLSCertFile     string
	TLSKeyFile      string
}

// Load loads configuration from the environment and an optional CONFIG_FILE
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		logger.Info("config file loaded", slog.String("file", file))
	}

	cfg := build(&source{v: v}, env)

	if cfg.Secrets.Provider == "aws" {
		sm, err := NewAWSSecretsManager(cfg.AWS.Region, cfg.Secrets.SecretName, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create secrets manager: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := ApplySecrets(ctx, cfg, sm); err != nil {
			return nil, fmt.Errorf("failed to apply secrets: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func build(s *source, env string) *Config {
	redisHost := s.str("REDIS_HOST", "localhost")
	redisPort := s.str("REDIS_PORT", "6379")

	return &Config{
		App: AppConfig{
			Name:        s.str("APP_NAME", "kasir-rental"),
			Environment: env,
			Version:     s.str("APP_VERSION", "dev"),
			LogLevel:    s.str("LOG_LEVEL", "debug"),
			LogFormat:   s.str("LOG_FORMAT", "json"),
			Debug:       s.boolean("APP_DEBUG", env == "development"),
		},
		Backend: BackendConfig{
			BaseURL:   s.str("BACKEND_BASE_URL", "http://localhost:8080/api/v1"),
			Timeout:   s.duration("BACKEND_TIMEOUT", 15*time.Second),
			RateLimit: s.float("BACKEND_RATE_LIMIT", 0),
			Burst:     s.integer("BACKEND_BURST", 10),
		},
		Database: DatabaseConfig{
			Enabled:            s.boolean("DB_ENABLED", true),
			Host:               s.str("DB_HOST", "localhost"),
			Port:               s.str("DB_PORT", "5432"),
			User:               s.str("DB_USER", "kasir"),
			Password:           s.str("DB_PASSWORD", "kasir_dev"),
			Name:               s.str("DB_NAME", "kasir_journal"),
			SSLMode:            s.str("DB_SSL_MODE", "disable"),
			MaxConnections:     int32(s.integer("DB_MAX_CONNECTIONS", 10)),
			MinConnections:     int32(s.integer("DB_MIN_CONNECTIONS", 2)),
			MaxConnLifetime:    s.duration("DB_CONNECTION_LIFETIME", time.Hour),
			MaxConnIdleTime:    s.duration("DB_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod:  s.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),
			ConnectTimeout:     s.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
			StatementCacheMode: s.str("DB_STATEMENT_CACHE_MODE", "describe"),
			EnableQueryLogging: s.boolean("DB_QUERY_LOGGING", false),
		},
		Redis: RedisConfig{
			Host:            redisHost,
			Port:            redisPort,
			Password:        s.str("REDIS_PASSWORD", ""),
			DB:              s.integer("REDIS_DB", 0),
			MaxRetries:      s.integer("REDIS_MAX_RETRIES", 3),
			MinRetryBackoff: s.duration("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: s.duration("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			DialTimeout:     s.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     s.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:    s.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolSize:        s.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns:    s.integer("REDIS_MIN_IDLE_CONNS", 2),
			PoolTimeout:     s.duration("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:     s.duration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
			TTL:             s.duration("REDIS_TTL", time.Minute),
			ListTTL:         s.duration("CACHE_LIST_TTL", 5*time.Minute),
			ShiftTTL:        s.duration("SHIFT_TTL", 16*time.Hour),
		},
		Asynq: AsynqConfig{
			RedisAddr:           fmt.Sprintf("%s:%s", redisHost, redisPort),
			RedisPassword:       s.str("REDIS_PASSWORD", ""),
			RedisDB:             s.integer("ASYNQ_REDIS_DB", 1),
			Concurrency:         s.integer("ASYNQ_CONCURRENCY", 5),
			Queues:              parseQueues(s.str("ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:      s.boolean("ASYNQ_STRICT_PRIORITY", false),
			RetryMax:            s.integer("ASYNQ_RETRY_MAX", 3),
			ShutdownTimeout:     s.duration("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
			HealthCheckInterval: s.duration("ASYNQ_HEALTH_CHECK_INTERVAL", 30*time.Second),
			CleanupSchedule:     s.str("JOURNAL_CLEANUP_SCHEDULE", "0 3 * * *"),
		},
		AWS: AWSConfig{
			Region:          s.str("AWS_REGION", "us-east-1"),
			AccessKeyID:     s.str("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: s.str("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        s.str("AWS_S3_BUCKET", "kasir-reports"),
			S3Endpoint:      s.str("AWS_S3_ENDPOINT", ""),
			UsePathStyle:    s.boolean("AWS_S3_PATH_STYLE", env == "development"),
		},
		Reports: ReportsConfig{
			JournalRetention: s.duration("JOURNAL_RETENTION", 90*24*time.Hour),
			PresignTTL:       s.duration("REPORT_PRESIGN_TTL", 15*time.Minute),
			ResultTTL:        s.duration("REPORT_RESULT_TTL", 24*time.Hour),
			Timeout:          s.duration("REPORT_TIMEOUT", 2*time.Minute),
		},
		Secrets: SecretsConfig{
			Provider:   s.str("SECRETS_PROVIDER", "env"),
			SecretName: s.str("SECRETS_NAME", "kasir-rental/"+env),
		},
		Security: SecurityConfig{
			RateLimitRequests: s.integer("RATE_LIMIT_REQUESTS", 100),
			RateLimitDuration: s.duration("RATE_LIMIT_DURATION", time.Minute),
			AllowedOrigins:    s.slice("ALLOWED_ORIGINS", []string{"*"}),
			TrustedProxies:    s.slice("TRUSTED_PROXIES", []string{}),
			SecureHeaders:     s.boolean("SECURE_HEADERS", env == "production"),
			RequestIDHeader:   s.str("REQUEST_ID_HEADER", "X-Request-ID"),
		},
		Server: ServerConfig{
			Host:            s.str("SERVER_HOST", "0.0.0.0"),
			Port:            s.str("SERVER_PORT", "3000"),
			ReadTimeout:     s.duration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    s.duration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     s.duration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxHeaderBytes:  s.integer("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			GracefulTimeout: s.duration("SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
			EnablePprof:     s.boolean("ENABLE_PPROF", false),
			TLSEnabled:      s.boolean("TLS_ENABLED", false),
			TLSCertFile:     s.str("TLS_CERT_FILE", ""),
			TLSKeyFile:      s.str("TLS_KEY_FILE", ""),
		},
	}
}

// Validate runs the basic checks, plus the production checks in production
func (c *Config) Validate() error {
	if err := (&BasicValidator{}).Validate(c); err != nil {
		return err
	}
	if c.IsProduction() {
		return (&ProductionValidator{}).Validate(c)
	}
	return nil
}

// GetDatabaseURL returns the formatted database connection string
func (c *Config) GetDatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}

// GetRedisAddr returns host:port for the Redis client
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "kasir-rental")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// source reads settings through viper so env vars win over the config file
type source struct {
	v *viper.Viper
}

func (s *source) str(key, defaultValue string) string {
	if value := s.v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func (s *source) boolean(key string, defaultValue bool) bool {
	if value := s.v.GetString(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func (s *source) integer(key string, defaultValue int) int {
	if value := s.v.GetString(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func (s *source) float(key string, defaultValue float64) float64 {
	if value := s.v.GetString(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func (s *source) duration(key string, defaultValue time.Duration) time.Duration {
	if value := s.v.GetString(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func (s *source) slice(key string, defaultValue []string) []string {
	if value := s.v.GetString(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	pairs := strings.Split(queuesStr, ",")
	for _, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
