// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// ContextKey names a request-scoped value copied onto every log record
type ContextKey string

const (
	ContextKeyRequestID  ContextKey = "request_id"
	ContextKeyTraceID    ContextKey = "trace_id"
	ContextKeyTerminalID ContextKey = "terminal_id"
	ContextKeyClientIP   ContextKey = "client_ip"
	ContextKeyMethod     ContextKey = "method"
	ContextKeyPath       ContextKey = "path"

	// Known only once a handler has looked up the terminal's shift
	ContextKeyStoreID ContextKey = "store_id"
	ContextKeyStaffID ContextKey = "staff_id"
)

var requestKeys = []ContextKey{
	ContextKeyRequestID,
	ContextKeyTraceID,
	ContextKeyTerminalID,
	ContextKeyClientIP,
	ContextKeyMethod,
	ContextKeyPath,
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string `json:"level"`
	Format         string `json:"format"` // json, text
	Output         string `json:"output"` // stdout, stderr, file:<path>
	AddSource      bool   `json:"add_source"`
	Environment    string `json:"environment"`
	ServiceName    string `json:"service_name"`
	ServiceVersion string `json:"service_version"`
}

// Logger wraps slog.Logger; records pick up request and shift fields from
// the context they are logged with
type Logger struct {
	*slog.Logger
}

// SetupLogger builds the process logger and installs it as slog's default
func SetupLogger(level string, format string) *Logger {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "kasir-rental"
	}

	logger := NewLogger(&LogConfig{
		Level:          level,
		Format:         format,
		Output:         "stdout",
		AddSource:      level == "debug",
		ServiceName:    serviceName,
		ServiceVersion: os.Getenv("SERVICE_VERSION"),
		Environment:    os.Getenv("APP_ENV"),
	})
	slog.SetDefault(logger.Logger)

	return logger
}

// NewLogger creates a logger writing to config.Output
func NewLogger(config *LogConfig) *Logger {
	if config == nil {
		config = &LogConfig{Level: "info", Format: "json", Output: "stdout"}
	}
	return newLogger(config, openOutput(config.Output))
}

func newLogger(config *LogConfig, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(config.Level),
		AddSource: config.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return replaceAttr(config.Format, groups, a)
		},
	}

	var handler slog.Handler
	if config.Format == "text" {
		handler = NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	handler = NewSanitizationHandler(NewContextHandler(handler))

	var attrs []slog.Attr
	if config.ServiceName != "" {
		attrs = append(attrs, slog.String("service", config.ServiceName))
	}
	if config.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", config.ServiceVersion))
	}
	if config.Environment != "" {
		attrs = append(attrs, slog.String("env", config.Environment))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return &Logger{Logger: slog.New(handler)}
}

type shiftKey struct{}

// shiftFields is filled in after the request context is built, so log
// lines written by the middleware after the handler returns still see it
type shiftFields struct {
	mu      sync.RWMutex
	storeID string
	staffID string
}

// WithShiftFields prepares ctx to carry the shift a handler resolves later
func WithShiftFields(ctx context.Context) context.Context {
	return context.WithValue(ctx, shiftKey{}, &shiftFields{})
}

// SetShift records the store and staff of the terminal's shift on a
// context prepared by WithShiftFields. Other contexts are left alone.
func SetShift(ctx context.Context, storeID, staffID string) {
	f, ok := ctx.Value(shiftKey{}).(*shiftFields)
	if !ok {
		return
	}
	f.mu.Lock()
	f.storeID, f.staffID = storeID, staffID
	f.mu.Unlock()
}

func contextAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	var attrs []slog.Attr
	for _, key := range requestKeys {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			attrs = append(attrs, slog.String(string(key), v))
		}
	}

	if f, ok := ctx.Value(shiftKey{}).(*shiftFields); ok {
		f.mu.RLock()
		if f.storeID != "" {
			attrs = append(attrs, slog.String(string(ContextKeyStoreID), f.storeID))
		}
		if f.staffID != "" {
			attrs = append(attrs, slog.String(string(ContextKeyStaffID), f.staffID))
		}
		f.mu.RUnlock()
	}
	return attrs
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(output string) io.Writer {
	switch {
	case output == "stderr":
		return os.Stderr
	case strings.HasPrefix(output, "file:"):
		file, err := os.OpenFile(strings.TrimPrefix(output, "file:"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return os.Stdout
		}
		return file
	default:
		return os.Stdout
	}
}

func replaceAttr(format string, _ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.UTC().Format(time.RFC3339Nano))
		}
	case a.Key == slog.LevelKey && format != "text":
		a.Key = "severity"
	case strings.HasSuffix(a.Key, "_ms"):
		if d, ok := a.Value.Any().(time.Duration); ok {
			a.Value = slog.Float64Value(float64(d.Microseconds()) / 1000)
		}
	}
	return a
}
