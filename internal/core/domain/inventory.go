// internal/core/domain/inventory.go
package domain

import "fmt"

// CartLine is one requested film and how many copies of it to rent.
// Film IDs may repeat across lines; each line is allocated on its own.
type CartLine struct {
	FilmID   int64 `json:"film_id"`
	Quantity int   `json:"quantity"`
}

// InventoryUnit represents one physical copy of a film held by a store
type InventoryUnit struct {
	InventoryID int64 `json:"inventory_id"`
	FilmID      int64 `json:"film_id"`
	StoreID     int64 `json:"store_id"`
}

// OpenRental is a rental that has not been returned yet. Only the
// inventory it holds matters for allocation.
type OpenRental struct {
	RentalID    int64  `json:"rental_id,omitempty"`
	InventoryID int64  `json:"inventory_id"`
	CustomerID  int64  `json:"customer_id,omitempty"`
	RentalDate  string `json:"rental_date,omitempty"`
}

// AllocationResult lists the inventory units chosen for a cart, in cart
// order and then in selection order within each line.
type AllocationResult []int64

// Validate checks a cart line before allocation. A zero quantity is valid.
func (l CartLine) Validate() error {
	if l.FilmID <= 0 {
		return fmt.Errorf("%w: film id must be positive, got %d", ErrInvalidArgument, l.FilmID)
	}
	if l.Quantity < 0 {
		return fmt.Errorf("%w: quantity for film %d cannot be negative", ErrInvalidArgument, l.FilmID)
	}
	return nil
}

// OpenInventorySet collects the inventory ids held by open rentals
func OpenInventorySet(rentals []OpenRental) map[int64]struct{} {
	set := make(map[int64]struct{}, len(rentals))
	for _, r := range rentals {
		set[r.InventoryID] = struct{}{}
	}
	return set
}

// DistinctFilmIDs returns the film ids of a cart in first-seen order
func DistinctFilmIDs(cart []CartLine) []int64 {
	seen := make(map[int64]struct{}, len(cart))
	ids := make([]int64, 0, len(cart))
	for _, line := range cart {
		if _, ok := seen[line.FilmID]; ok {
			continue
		}
		seen[line.FilmID] = struct{}{}
		ids = append(ids, line.FilmID)
	}
	return ids
}
