// internal/core/ports/shift_store.go
package ports

import (
	"context"

	"github.com/ammerola/kasir-rental/internal/core/domain"
)

// ShiftStore persists the active shift of each terminal.
// Get returns domain.ErrNoActiveShift when nothing usable is stored.
type ShiftStore interface {
	Get(ctx context.Context, terminalID string) (*domain.Shift, error)
	Save(ctx context.Context, terminalID string, shift *domain.Shift) error
	Clear(ctx context.Context, terminalID string) error
}
