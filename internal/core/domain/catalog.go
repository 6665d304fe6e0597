// internal/core/domain/catalog.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store is a rental location a shift can be opened at
type Store struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Staff is an active staff member able to run a shift
type Staff struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	StoreID string `json:"store_id"`
}

// Customer is a renter as listed in the checkout lookup
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Film is a title that can be added to the cart
type Film struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// FilmAvailability reports stock for one film at one store
type FilmAvailability struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

// Invoice summarises what a customer owes for a rental
type Invoice struct {
	ID           string          `json:"id"`
	RentalID     string          `json:"rental_id"`
	Total        decimal.Decimal `json:"total"`
	Paid         decimal.Decimal `json:"paid"`
	Due          decimal.Decimal `json:"due"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	FilmTitle    string          `json:"film_title"`
}

// Shift is the store/staff pair a terminal is operating under
type Shift struct {
	StoreID   string    `json:"storeId"`
	StaffID   string    `json:"staffId"`
	StartedAt time.Time `json:"startedAt"`
}

// Valid reports whether a stored shift carries both identities
func (s *Shift) Valid() bool {
	return s != nil && s.StoreID != "" && s.StaffID != ""
}

// CheckoutRecord is a committed checkout kept in the local journal
type CheckoutRecord struct {
	ID           string    `json:"id"`
	TerminalID   string    `json:"terminal_id"`
	StoreID      int64     `json:"store_id"`
	StaffID      int64     `json:"staff_id"`
	CustomerID   int64     `json:"customer_id"`
	InventoryIDs []int64   `json:"inventory_ids"`
	RentalIDs    []int64   `json:"rental_ids"`
	InvoiceID    string    `json:"invoice_id"`
	CreatedAt    time.Time `json:"created_at"`
}
