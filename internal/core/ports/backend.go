// internal/core/ports/backend.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// RentalBackend is the remote rental REST API the point of sale runs against.
// Every failure it returns wraps domain.ErrRemoteFailure.
type RentalBackend interface {
	ListStores(ctx context.Context, limit int) ([]BackendStore, error)
	ListStaff(ctx context.Context, limit int) ([]BackendStaff, error)
	ListCustomers(ctx context.Context, limit int) ([]BackendCustomer, error)
	LookupCustomers(ctx context.Context, query string, limit int) ([]BackendCustomerMatch, error)
	ListFilms(ctx context.Context, limit int) ([]BackendFilm, error)
	LookupFilms(ctx context.Context, query string, limit int) ([]BackendFilmMatch, error)
	GetFilm(ctx context.Context, filmID int64) (*BackendFilm, error)
	GetFilmAvailability(ctx context.Context, filmID, storeID int64) (*BackendAvailability, error)
	ListFilmInventory(ctx context.Context, filmID int64, limit int) ([]BackendInventory, error)
	ListOpenRentals(ctx context.Context, storeID int64, limit int) ([]BackendRental, error)
	GetInvoice(ctx context.Context, rentalID int64) (*BackendInvoice, error)
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
	ReturnBatch(ctx context.Context, rentalIDs []int64) (*ReturnBatchResponse, error)
	CreatePayment(ctx context.Context, req PaymentRequest) error
}

// BackendStore is a store as listed by the backend
type BackendStore struct {
	StoreID        int64 `json:"store_id"`
	ManagerStaffID int64 `json:"manager_staff_id"`
}

// BackendStaff is a staff member as listed by the backend
type BackendStaff struct {
	StaffID   int64  `json:"staff_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StoreID   int64  `json:"store_id"`
	Active    bool   `json:"active"`
}

// BackendCustomer is a full customer record
type BackendCustomer struct {
	CustomerID int64  `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
}

// BackendCustomerMatch is a customer search hit
type BackendCustomerMatch struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// BackendFilm is a full film record
type BackendFilm struct {
	FilmID         int64  `json:"film_id"`
	Title          string `json:"title"`
	RentalDuration int    `json:"rental_duration"`
}

// BackendFilmMatch is a film search hit
type BackendFilmMatch struct {
	FilmID int64  `json:"film_id"`
	Title  string `json:"title"`
}

// BackendAvailability is the stock summary of one film at one store
type BackendAvailability struct {
	FilmID    int64 `json:"film_id"`
	Total     int   `json:"total"`
	Available int   `json:"available"`
}

// BackendInventory is one physical copy of a film
type BackendInventory struct {
	InventoryID int64 `json:"inventory_id"`
	FilmID      int64 `json:"film_id"`
	StoreID     int64 `json:"store_id"`
}

// BackendRental is an open rental
type BackendRental struct {
	RentalID    int64  `json:"rental_id"`
	RentalDate  string `json:"rental_date"`
	InventoryID int64  `json:"inventory_id"`
	CustomerID  int64  `json:"customer_id"`
}

// BackendInvoice is the invoice view of a single rental
type BackendInvoice struct {
	Rental struct {
		RentalID   int64  `json:"rental_id"`
		RentalDate string `json:"rental_date"`
	} `json:"rental"`
	Film struct {
		FilmID     int64           `json:"film_id"`
		Title      string          `json:"title"`
		RentalRate decimal.Decimal `json:"rental_rate"`
	} `json:"film"`
	Customer struct {
		CustomerID int64  `json:"customer_id"`
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
	} `json:"customer"`
	Summary struct {
		TotalPaid decimal.Decimal `json:"total_paid"`
		AmountDue decimal.Decimal `json:"amount_due"`
	} `json:"summary"`
}

// CheckoutRequest commits a batch of inventory units as new rentals
type CheckoutRequest struct {
	CustomerID   int64   `json:"customerId"`
	StaffID      int64   `json:"staffId"`
	StoreID      int64   `json:"storeId"`
	InventoryIDs []int64 `json:"inventoryIds"`
}

// CheckoutResponse lists the rentals created by a checkout
type CheckoutResponse struct {
	RentalIDs []int64 `json:"rental_ids"`
	Message   string  `json:"-"`
}

// ReturnBatchResponse lists which rentals were returned
type ReturnBatchResponse struct {
	Updated []int64 `json:"updated"`
	Skipped []int64 `json:"skipped"`
}

// PaymentRequest records a payment against a rental
type PaymentRequest struct {
	CustomerID int64           `json:"customerId"`
	StaffID    int64           `json:"staffId"`
	RentalID   int64           `json:"rentalId"`
	Amount     decimal.Decimal `json:"amount"`
}
