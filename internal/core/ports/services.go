// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/kasir-rental/internal/core/domain"
)

// CatalogService serves the lookup lists behind the shift and checkout screens
type CatalogService interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListStaff(ctx context.Context, storeID string) ([]domain.Staff, error)
	LookupCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	LookupFilms(ctx context.Context, query string) ([]domain.Film, error)
	FilmAvailability(ctx context.Context, filmID, storeID string) (*domain.FilmAvailability, error)
}

// ShiftService manages the store/staff identity of a terminal
type ShiftService interface {
	Start(ctx context.Context, terminalID, storeID, staffID string) (*domain.Shift, error)
	Current(ctx context.Context, terminalID string) (*domain.Shift, error)
	End(ctx context.Context, terminalID string) error
}

// CheckoutService turns a cart into committed rentals
type CheckoutService interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	RecentCheckouts(ctx context.Context, storeID string, limit int) ([]domain.CheckoutRecord, error)
}

// RentalService covers returns, invoices and payments
type RentalService interface {
	ListOpenRentals(ctx context.Context, storeID string, now time.Time) ([]domain.Rental, error)
	SearchOpenRentals(ctx context.Context, storeID, query string, now time.Time) ([]domain.Rental, error)
	ReturnRentals(ctx context.Context, rentalIDs []string) (*domain.ReturnResult, error)
	GetInvoice(ctx context.Context, rentalID string) (*domain.Invoice, error)
	PayInvoice(ctx context.Context, input PaymentInput) (*PaymentResult, error)
}

// ReportQueue schedules background reports and reports on their progress
type ReportQueue interface {
	EnqueueOpenRentalsReport(ctx context.Context, storeID int64, requestedBy string) (string, error)
	ReportStatus(ctx context.Context, taskID string) (*ReportStatus, error)
}

// CartItem is one cart entry as typed in by the cashier
type CartItem struct {
	FilmID   string `json:"film_id"`
	Quantity int    `json:"qty"`
}

// CheckoutInput holds everything needed to commit a checkout
type CheckoutInput struct {
	TerminalID string
	CustomerID string
	StaffID    string
	StoreID    string
	Cart       []CartItem
}

// CheckoutResult is returned after the backend created the rentals
type CheckoutResult struct {
	RentalIDs []string `json:"rental_ids"`
	InvoiceID string   `json:"invoice_id"`
	Message   string   `json:"message"`
}

// PaymentInput records a cashier payment against a rental
type PaymentInput struct {
	RentalID   string
	CustomerID string
	StaffID    string
	Amount     decimal.Decimal
}

// PaymentResult carries the invoice balance after a payment
type PaymentResult struct {
	Paid decimal.Decimal `json:"paid"`
	Due  decimal.Decimal `json:"due"`
}

// ReportStatus describes a queued report task
type ReportStatus struct {
	TaskID      string     `json:"task_id"`
	State       string     `json:"state"`
	StoreID     int64      `json:"store_id,omitempty"`
	DownloadURL string     `json:"download_url,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
