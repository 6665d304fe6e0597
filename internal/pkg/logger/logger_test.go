package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, config *LogConfig, log func(*slog.Logger)) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	log(newLogger(config, &buf).Logger)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestContextHandler_AddsRequestScopedFields(t *testing.T) {
	ctx := context.WithValue(context.Background(), ContextKeyRequestID, "req-1")
	ctx = context.WithValue(ctx, ContextKeyTerminalID, "lane-2")

	entry := captureJSON(t, &LogConfig{Format: "json"}, func(l *slog.Logger) {
		l.InfoContext(ctx, "checkout committed", slog.Int("rentals", 2))
	})

	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "lane-2", entry["terminal_id"])
	assert.Equal(t, float64(2), entry["rentals"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.NotContains(t, entry, "store_id")
}

func TestSetShift_VisibleToRecordsLoggedLater(t *testing.T) {
	ctx := WithShiftFields(context.WithValue(context.Background(), ContextKeyTerminalID, "lane-2"))

	before := captureJSON(t, &LogConfig{Format: "json"}, func(l *slog.Logger) {
		l.InfoContext(ctx, "request started")
	})
	assert.NotContains(t, before, "store_id")

	SetShift(ctx, "1", "2")

	after := captureJSON(t, &LogConfig{Format: "json"}, func(l *slog.Logger) {
		l.InfoContext(ctx, "request completed")
	})
	assert.Equal(t, "1", after["store_id"])
	assert.Equal(t, "2", after["staff_id"])
	assert.Equal(t, "lane-2", after["terminal_id"])
}

func TestSetShift_WithoutFieldsIsNoop(t *testing.T) {
	ctx := context.Background()
	SetShift(ctx, "1", "2")

	entry := captureJSON(t, &LogConfig{Format: "json"}, func(l *slog.Logger) {
		l.InfoContext(ctx, "no shift")
	})
	assert.NotContains(t, entry, "store_id")
}

func TestSanitizationHandler_RedactsSecrets(t *testing.T) {
	entry := captureJSON(t, &LogConfig{Format: "json"}, func(l *slog.Logger) {
		l.Info("connecting",
			slog.String("db_password", "hunter2"),
			slog.String("dsn", "host=db password=hunter2 sslmode=disable"),
			slog.Group("customer", slog.String("email", "MARY.SMITH@sakilacustomer.org")))
	})

	assert.Equal(t, redacted, entry["db_password"])
	assert.Equal(t, "host=db password="+redacted+" sslmode=disable", entry["dsn"])
	customer := entry["customer"].(map[string]any)
	assert.Equal(t, redacted, customer["email"])
}

func TestNewLogger_ServiceAttrs(t *testing.T) {
	entry := captureJSON(t, &LogConfig{Format: "json", ServiceName: "kasir-rental", Environment: "test"},
		func(l *slog.Logger) { l.Warn("backend slow") })

	assert.Equal(t, "kasir-rental", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "WARN", entry["severity"])
}

func TestTextHandler(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&LogConfig{Level: "warn", Format: "text"}, &buf).Logger
	ctx := WithShiftFields(context.Background())
	SetShift(ctx, "1", "2")

	l.InfoContext(ctx, "dropped below level")
	l.WithGroup("backend").WarnContext(ctx, "retrying", slog.Int("attempt", 2))

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "retrying")
	assert.Contains(t, out, "backend.attempt")
	assert.Contains(t, out, "store_id")
	assert.NotContains(t, out, "dropped below level")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG").Level())
	assert.Equal(t, slog.LevelWarn, parseLevel("warning").Level())
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus").Level())
}
