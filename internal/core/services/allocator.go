// internal/core/services/allocator.go
package services

import (
	"fmt"

	"github.com/ammerola/kasir-rental/internal/core/domain"
)

// Allocate picks the inventory units that satisfy a cart at one store.
//
// Lines are served in cart order. A unit is a candidate for a line when it
// belongs to storeID, is not held by an open rental and has not been claimed
// by an earlier line of the same call. The first Quantity candidates, in the
// order inventoryByFilm lists them, are taken. Any shortfall fails the whole
// call and nothing is returned.
//
// Allocate performs no I/O; the open rentals and inventory lists are the
// snapshot the caller fetched for this checkout attempt.
func Allocate(
	storeID int64,
	cart []domain.CartLine,
	openRentals []domain.OpenRental,
	inventoryByFilm map[int64][]domain.InventoryUnit,
) (domain.AllocationResult, error) {
	if storeID <= 0 {
		return nil, fmt.Errorf("%w: store id must be positive, got %d", domain.ErrInvalidArgument, storeID)
	}
	for _, line := range cart {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	open := domain.OpenInventorySet(openRentals)
	claimed := make(map[int64]struct{})
	result := make(domain.AllocationResult, 0)

	for _, line := range cart {
		if line.Quantity == 0 {
			continue
		}

		candidates := make([]int64, 0, min(line.Quantity, len(inventoryByFilm[line.FilmID])))
		for _, unit := range inventoryByFilm[line.FilmID] {
			if unit.StoreID != storeID {
				continue
			}
			if _, held := open[unit.InventoryID]; held {
				continue
			}
			if _, taken := claimed[unit.InventoryID]; taken {
				continue
			}
			candidates = append(candidates, unit.InventoryID)
		}

		if len(candidates) < line.Quantity {
			return nil, &domain.InsufficientStockError{
				FilmID:    line.FilmID,
				Requested: line.Quantity,
				Available: len(candidates),
			}
		}

		for _, id := range candidates[:line.Quantity] {
			claimed[id] = struct{}{}
			result = append(result, id)
		}
	}

	return result, nil
}
