// internal/handlers/respond.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
	"github.com/ammerola/kasir-rental/internal/handlers/middleware"
	"github.com/ammerola/kasir-rental/internal/pkg/logger"
)

// maxBodyBytes caps request bodies; carts and payments are small
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	FilmID    string `json:"film_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, log *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, message string) {
	respondJSON(w, log, status, ErrorResponse{Error: message, RequestID: requestID(r)})
}

// respondServiceError maps a service error to its HTTP status and body
func respondServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := classifyError(err)
	body.RequestID = requestID(r)

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.Int("status", status),
			slog.String("error", err.Error()))
	} else {
		log.WarnContext(r.Context(), "request rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}

	respondJSON(w, log, status, body)
}

func classifyError(err error) (int, ErrorResponse) {
	var stock *domain.InsufficientStockError
	var remote *domain.RemoteError

	switch {
	case errors.As(err, &stock):
		return http.StatusConflict, ErrorResponse{
			Error:  err.Error(),
			Code:   "INSUFFICIENT_STOCK",
			FilmID: domain.FormatID(stock.FilmID),
		}
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "INSUFFICIENT_STOCK"}
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "EMPTY_CART"}
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_ARGUMENT"}
	case errors.Is(err, domain.ErrNoActiveShift):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "NO_ACTIVE_SHIFT"}
	case errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "NOT_FOUND"}
	case errors.As(err, &remote):
		status := http.StatusBadGateway
		if remote.Status >= 400 && remote.Status < 500 {
			status = remote.Status
		}
		return status, ErrorResponse{Error: remote.Message, Code: remote.Code}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"}
	}
}

// decodeJSON reads a JSON body into dst, rejecting unknown trailing data
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is required", domain.ErrInvalidArgument)
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument)
	}
	return nil
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(logger.ContextKeyRequestID).(string)
	return id
}

// terminalID names the lane of the request; services default an empty one
func terminalID(r *http.Request) string {
	if id, ok := r.Context().Value(logger.ContextKeyTerminalID).(string); ok && id != "" {
		return id
	}
	return strings.TrimSpace(r.Header.Get(middleware.TerminalHeader))
}

// currentShift loads the lane's shift and tags the request's log lines with it
func currentShift(ctx context.Context, shifts ports.ShiftService, terminal string) (*domain.Shift, error) {
	shift, err := shifts.Current(ctx, terminal)
	if err != nil {
		return nil, err
	}
	logger.SetShift(ctx, shift.StoreID, shift.StaffID)
	return shift, nil
}

// flexibleID accepts identifiers sent either as JSON strings or numbers
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number")
	}
	*f = flexibleID(n.String())
	return nil
}
