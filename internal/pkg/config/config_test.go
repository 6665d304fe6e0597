package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestViper ignores the process environment
func newTestViper() *viper.Viper {
	return viper.New()
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := Load(discardLogger())

	require.NoError(t, err)
	assert.Equal(t, "kasir-rental", cfg.App.Name)
	assert.Equal(t, "http://localhost:8080/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ListTTL)
	assert.Equal(t, 90*24*time.Hour, cfg.Reports.JournalRetention)
	assert.Equal(t, "localhost:6379", cfg.Asynq.RedisAddr)
	assert.Equal(t, map[string]int{"critical": 6, "default": 3, "low": 1}, cfg.Asynq.Queues)
	assert.Equal(t, "0.0.0.0:3000", cfg.GetServerAddress())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("BACKEND_BASE_URL", "https://rental.internal/api/v1")
	t.Setenv("BACKEND_RATE_LIMIT", "25.5")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("SHIFT_TTL", "0s")
	t.Setenv("ALLOWED_ORIGINS", "https://pos.example, https://admin.example")
	t.Setenv("ASYNQ_QUEUES", "reports:2")

	cfg, err := Load(discardLogger())

	require.NoError(t, err)
	assert.Equal(t, "https://rental.internal/api/v1", cfg.Backend.BaseURL)
	assert.Equal(t, 25.5, cfg.Backend.RateLimit)
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
	assert.Equal(t, "cache:6379", cfg.Asynq.RedisAddr)
	assert.Zero(t, cfg.Redis.ShiftTTL)
	assert.Equal(t, []string{"https://pos.example", "https://admin.example"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, map[string]int{"reports": 2}, cfg.Asynq.Queues)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "kasir.yaml")
	require.NoError(t, os.WriteFile(file, []byte("backend_timeout: 5s\nserver_port: \"9000\"\n"), 0o600))

	t.Setenv("APP_ENV", "test")
	t.Setenv("CONFIG_FILE", file)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load(discardLogger())

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "9100", cfg.Server.Port, "environment wins over the file")
}

func TestLoad_InvalidBackendURL(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("BACKEND_BASE_URL", "not a url")

	_, err := Load(discardLogger())

	assert.Error(t, err)
}

func TestBasicValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing_app_name", mutate: func(c *Config) { c.App.Name = "" }, wantErr: "App.Name"},
		{name: "placeholder_port", mutate: func(c *Config) { c.Server.Port = "MISSING_PORT" }, wantErr: "Server.Port"},
		{name: "zero_backend_timeout", mutate: func(c *Config) { c.Backend.Timeout = 0 }, wantErr: "backend timeout"},
		{name: "negative_rate_limit", mutate: func(c *Config) { c.Backend.RateLimit = -1 }, wantErr: "rate limit"},
		{name: "pool_bounds", mutate: func(c *Config) { c.Database.MinConnections = 20 }, wantErr: "max_connections"},
		{name: "presign_too_long", mutate: func(c *Config) { c.Reports.PresignTTL = 8 * 24 * time.Hour }, wantErr: "presign"},
		{name: "retention_too_short", mutate: func(c *Config) { c.Reports.JournalRetention = time.Hour }, wantErr: "retention"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := build(&source{v: newTestViper()}, "test")
			tt.mutate(cfg)

			err := (&BasicValidator{}).Validate(cfg)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProductionValidator(t *testing.T) {
	valid := func() *Config {
		cfg := build(&source{v: newTestViper()}, "production")
		cfg.Backend.BaseURL = "https://rental.internal/api/v1"
		cfg.Database.SSLMode = "require"
		cfg.Security.AllowedOrigins = []string{"https://pos.example"}
		return cfg
	}

	assert.NoError(t, (&ProductionValidator{}).Validate(valid()))

	cfg := valid()
	cfg.Security.AllowedOrigins = []string{"*"}
	assert.Error(t, (&ProductionValidator{}).Validate(cfg))

	cfg = valid()
	cfg.Database.Password = ""
	assert.ErrorIs(t, (&ProductionValidator{}).Validate(cfg), ErrMissingRequiredConfig)

	cfg = valid()
	cfg.Database.Enabled = false
	cfg.Database.Password = ""
	assert.NoError(t, (&ProductionValidator{}).Validate(cfg), "journal credentials are not needed without a journal")

	cfg = valid()
	cfg.Backend.BaseURL = "http://localhost:8080/api/v1"
	assert.Error(t, (&ProductionValidator{}).Validate(cfg))
}

type stubSecrets map[string]string

func (s stubSecrets) GetSecrets(_ context.Context, keys []string) (map[string]string, error) {
	out := map[string]string{}
	for _, k := range keys {
		if v, ok := s[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func TestApplySecrets(t *testing.T) {
	cfg := build(&source{v: newTestViper()}, "test")

	err := ApplySecrets(context.Background(), cfg, stubSecrets{
		SecretDBPassword:    "db-secret",
		SecretRedisPassword: "redis-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "db-secret", cfg.Database.Password)
	assert.Equal(t, "redis-secret", cfg.Redis.Password)
	assert.Equal(t, "redis-secret", cfg.Asynq.RedisPassword)
	assert.Empty(t, cfg.AWS.AccessKeyID, "absent keys keep their configured value")
}

type fakeSecretsAPI struct {
	calls  int
	secret *string
	err    error
}

func (f *fakeSecretsAPI) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput,
	_ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretString: f.secret}, nil
}

func TestAWSSecretsManager(t *testing.T) {
	t.Run("caches_parsed_secret", func(t *testing.T) {
		api := &fakeSecretsAPI{secret: aws.String(`{"DB_PASSWORD":"s3cret","OTHER":"x"}`)}
		sm := newAWSSecretsManager(api, "kasir-rental/production", discardLogger())

		got, err := sm.GetSecrets(context.Background(), []string{SecretDBPassword, SecretRedisPassword})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{SecretDBPassword: "s3cret"}, got)

		_, err = sm.GetSecrets(context.Background(), []string{SecretDBPassword})
		require.NoError(t, err)
		assert.Equal(t, 1, api.calls)
	})

	t.Run("surfaces_api_errors", func(t *testing.T) {
		api := &fakeSecretsAPI{err: errors.New("access denied")}
		sm := newAWSSecretsManager(api, "kasir-rental/production", discardLogger())

		_, err := sm.GetSecrets(context.Background(), []string{SecretDBPassword})
		assert.Error(t, err)
	})

	t.Run("rejects_non_json_secret", func(t *testing.T) {
		api := &fakeSecretsAPI{secret: aws.String("plain")}
		sm := newAWSSecretsManager(api, "kasir-rental/production", discardLogger())

		_, err := sm.GetSecrets(context.Background(), []string{SecretDBPassword})
		assert.Error(t, err)
	})
}
