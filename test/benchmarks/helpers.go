// test/benchmarks/helpers.go
package benchmarks

import (
	"github.com/ammerola/kasir-rental/internal/core/domain"
)

// storeSnapshot is the inventory a checkout sees for one store
type storeSnapshot struct {
	storeID     int64
	cart        []domain.CartLine
	openRentals []domain.OpenRental
	inventory   map[int64][]domain.InventoryUnit
}

// buildSnapshot creates films*copies units split across two stores, with
// every third copy of store 1 already rented out. The cart asks for one
// copy of each film.
func buildSnapshot(films, copies int) storeSnapshot {
	snap := storeSnapshot{
		storeID:   1,
		inventory: make(map[int64][]domain.InventoryUnit, films),
	}

	var inventoryID, rentalID int64
	for f := 1; f <= films; f++ {
		filmID := int64(f)
		units := make([]domain.InventoryUnit, 0, copies)
		for c := 0; c < copies; c++ {
			inventoryID++
			store := int64(1 + c%2)
			units = append(units, domain.InventoryUnit{
				InventoryID: inventoryID,
				FilmID:      filmID,
				StoreID:     store,
			})
			if store == 1 && c%3 == 0 {
				rentalID++
				snap.openRentals = append(snap.openRentals, domain.OpenRental{
					RentalID:    rentalID,
					InventoryID: inventoryID,
					CustomerID:  int64(c + 1),
				})
			}
		}
		snap.inventory[filmID] = units
		snap.cart = append(snap.cart, domain.CartLine{FilmID: filmID, Quantity: 1})
	}
	return snap
}

// benchmarkRecord is a journal row of a typical three film checkout
func benchmarkRecord(i int) domain.CheckoutRecord {
	return domain.CheckoutRecord{
		TerminalID:   "lane-1",
		StoreID:      1,
		StaffID:      1,
		CustomerID:   int64(i%500 + 1),
		InventoryIDs: []int64{101, 102, 103},
		RentalIDs:    []int64{int64(i*3 + 1), int64(i*3 + 2), int64(i*3 + 3)},
	}
}
