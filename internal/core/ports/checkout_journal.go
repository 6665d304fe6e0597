// internal/core/ports/checkout_journal.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/kasir-rental/internal/core/domain"
)

// CheckoutJournal keeps a local record of committed checkouts.
// This interface is implemented by the database adapter.
type CheckoutJournal interface {
	Record(ctx context.Context, record *domain.CheckoutRecord) error
	ListRecent(ctx context.Context, storeID int64, limit int) ([]domain.CheckoutRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
