// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed identifiers, quantities or amounts
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientStock marks a cart line the store cannot satisfy
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyCart is returned when a checkout would rent nothing
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNoActiveShift is returned when a terminal has not started a shift
	ErrNoActiveShift = errors.New("no active shift")

	// ErrRemoteFailure wraps every failure reported by the rental backend
	ErrRemoteFailure = errors.New("remote failure")

	// ErrReportNotFound is returned for report IDs the job queue does not know
	ErrReportNotFound = errors.New("report not found")
)

// InsufficientStockError identifies the film that could not be allocated
type InsufficientStockError struct {
	FilmID    int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for film %d: requested %d, available %d",
		e.FilmID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// RemoteError is the decoded failure of a backend call
type RemoteError struct {
	Status    int    `json:"status"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemoteFailure
}

// NewRemoteError builds a RemoteError with the given status and message
func NewRemoteError(status int, message string) *RemoteError {
	return &RemoteError{Status: status, Message: message}
}
