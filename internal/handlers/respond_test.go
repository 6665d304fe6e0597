package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/kasir-rental/internal/core/domain"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantFilm   string
		wantMsg    string
	}{
		{
			name:       "invalid_argument",
			err:        fmt.Errorf("%w: Customer ID must be a positive integer", domain.ErrInvalidArgument),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ARGUMENT",
		},
		{
			name:       "insufficient_stock_names_film",
			err:        fmt.Errorf("checkout: %w", &domain.InsufficientStockError{FilmID: 7, Requested: 3, Available: 1}),
			wantStatus: http.StatusConflict,
			wantCode:   "INSUFFICIENT_STOCK",
			wantFilm:   "7",
		},
		{
			name:       "empty_cart",
			err:        domain.ErrEmptyCart,
			wantStatus: http.StatusBadRequest,
			wantCode:   "EMPTY_CART",
		},
		{
			name:       "no_active_shift",
			err:        domain.ErrNoActiveShift,
			wantStatus: http.StatusNotFound,
			wantCode:   "NO_ACTIVE_SHIFT",
		},
		{
			name:       "unknown_report",
			err:        fmt.Errorf("%w: abc", domain.ErrReportNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "backend_client_error_keeps_status",
			err:        fmt.Errorf("failed to pay: %w", &domain.RemoteError{Status: 422, Code: "VALIDATION", Message: "amount exceeds balance"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION",
			wantMsg:    "amount exceeds balance",
		},
		{
			name:       "backend_server_error_is_bad_gateway",
			err:        domain.NewRemoteError(500, "HTTP 500"),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "HTTP 500",
		},
		{
			name:       "transport_error_is_bad_gateway",
			err:        domain.NewRemoteError(0, "dial tcp: connection refused"),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unknown_error_is_hidden",
			err:        errors.New("redis: nil pointer"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classifyError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantFilm, body.FilmID)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Error)
			}
		})
	}
}

func TestFlexibleID(t *testing.T) {
	var req struct {
		A flexibleID `json:"a"`
		B flexibleID `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": " 7 "}`), &req))
	assert.Equal(t, flexibleID("42"), req.A)
	assert.Equal(t, flexibleID("7"), req.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &req))
}
