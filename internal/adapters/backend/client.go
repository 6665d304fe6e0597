// internal/adapters/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
)

const (
	DefaultBaseURL = "http://localhost:8080/api/v1"
	DefaultTimeout = 15 * time.Second

	maxBodyBytes = 8 << 20
)

// Config holds rental backend client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is the sustained requests per second; zero disables limiting
	RateLimit float64
	Burst     int
}

// Client talks to the rental REST API and unwraps its response envelope
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// envelope is the wrapper every backend response is sent in
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Meta      json.RawMessage `json:"meta"`
	Error     *envelopeError  `json:"error"`
	RequestID string          `json:"request_id"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

// result is a decoded successful envelope
type result struct {
	data      json.RawMessage
	message   string
	requestID string
}

// NewClient creates a new backend client
func NewClient(cfg *Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: logger.With(slog.String("component", "rental_backend")),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// requestAPI performs a call and returns the unwrapped envelope
func (c *Client) requestAPI(ctx context.Context, method, path string, query url.Values, body any) (*result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &domain.RemoteError{Message: err.Error()}
		}
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID, ok := ctx.Value(logger.ContextKeyRequestID).(string); ok && requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, &domain.RemoteError{Message: err.Error(), Details: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.RemoteError{Message: err.Error()}
	}

	c.logger.DebugContext(ctx, "backend request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeFailure(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &domain.RemoteError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("invalid response body: %s", err.Error()),
		}
	}
	if !env.Success {
		return nil, toRemoteError(http.StatusBadRequest, &env)
	}

	return &result{data: env.Data, message: env.Message, requestID: env.RequestID}, nil
}

// requestData performs a call whose envelope must carry data, decoded into dest
func (c *Client) requestData(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	res, err := c.requestAPI(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if !hasData(res.data) {
		return &domain.RemoteError{
			Status:    http.StatusInternalServerError,
			Message:   "Response data is empty",
			RequestID: res.requestID,
		}
	}
	return decodeOptional(res, dest)
}

func decodeFailure(status int, raw []byte) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &domain.RemoteError{Status: status, Message: fmt.Sprintf("HTTP %d", status)}
	}
	return toRemoteError(status, &env)
}

func toRemoteError(status int, env *envelope) *domain.RemoteError {
	remote := &domain.RemoteError{Status: status, RequestID: env.RequestID}
	switch {
	case env.Error != nil && env.Error.Message != "":
		remote.Message = env.Error.Message
	case env.Message != "":
		remote.Message = env.Message
	default:
		remote.Message = fmt.Sprintf("Request failed with status %d", status)
	}
	if env.Error != nil {
		remote.Code = env.Error.Code
		remote.Details = env.Error.Details
	}
	return remote
}

func hasData(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// decodeOptional decodes data that a caller tolerates being absent
func decodeOptional(res *result, dest any) error {
	if err := json.Unmarshal(res.data, dest); err != nil {
		return &domain.RemoteError{
			Status:    http.StatusInternalServerError,
			Message:   fmt.Sprintf("unexpected response data: %s", err.Error()),
			RequestID: res.requestID,
		}
	}
	return nil
}
