// internal/core/services/checkout.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

const defaultCheckoutMessage = "Checkout berhasil."

// CheckoutService loads an availability snapshot, allocates the cart
// against it and commits the allocation in a single backend call.
type CheckoutService struct {
	backend ports.RentalBackend
	journal ports.CheckoutJournal
	cache   ports.CacheRepository
	logger  *slog.Logger
	now     func() time.Time
}

// Statically assert that *CheckoutService implements the CheckoutService interface.
var _ ports.CheckoutService = (*CheckoutService)(nil)

// NewCheckoutService creates a new checkout service. journal and cache may be nil.
func NewCheckoutService(backend ports.RentalBackend, journal ports.CheckoutJournal,
	cache ports.CacheRepository, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		backend: backend,
		journal: journal,
		cache:   cache,
		logger:  logger.With(slog.String("service", "checkout")),
		now:     time.Now,
	}
}

// Checkout commits the cart as new rentals. A failed call leaves remote
// state untouched; callers retry the whole checkout, never a part of it.
func (s *CheckoutService) Checkout(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	customerID, err := domain.ParseID(input.CustomerID, "Customer ID")
	if err != nil {
		return nil, err
	}
	staffID, err := domain.ParseID(input.StaffID, "Staff ID")
	if err != nil {
		return nil, err
	}
	storeID, err := domain.ParseID(input.StoreID, "Store ID")
	if err != nil {
		return nil, err
	}

	cart, err := toCartLines(input.Cart)
	if err != nil {
		return nil, err
	}
	if !hasQuantity(cart) {
		return nil, domain.ErrEmptyCart
	}

	openRentals, inventoryByFilm, err := s.loadSnapshot(ctx, storeID, domain.DistinctFilmIDs(cart))
	if err != nil {
		return nil, err
	}

	inventoryIDs, err := Allocate(storeID, cart, openRentals, inventoryByFilm)
	if err != nil {
		s.logger.InfoContext(ctx, "allocation rejected",
			slog.Int64("store_id", storeID),
			slog.String("error", err.Error()))
		return nil, err
	}
	if len(inventoryIDs) == 0 {
		return nil, domain.ErrEmptyCart
	}

	resp, err := s.backend.Checkout(ctx, ports.CheckoutRequest{
		CustomerID:   customerID,
		StaffID:      staffID,
		StoreID:      storeID,
		InventoryIDs: inventoryIDs,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "checkout commit failed",
			slog.Int64("store_id", storeID),
			slog.Int("units", len(inventoryIDs)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}
	if resp == nil || len(resp.RentalIDs) == 0 {
		return nil, domain.NewRemoteError(500, "checkout succeeded but no rental id was returned")
	}

	rentalIDs := domain.FormatIDs(resp.RentalIDs)
	result := &ports.CheckoutResult{
		RentalIDs: rentalIDs,
		InvoiceID: rentalIDs[0],
		Message:   resp.Message,
	}
	if result.Message == "" {
		result.Message = defaultCheckoutMessage
	}

	s.logger.InfoContext(ctx, "checkout committed",
		slog.Int64("store_id", storeID),
		slog.Int64("customer_id", customerID),
		slog.Int("rentals", len(rentalIDs)))

	s.recordJournal(ctx, &domain.CheckoutRecord{
		ID:           uuid.New().String(),
		TerminalID:   input.TerminalID,
		StoreID:      storeID,
		StaffID:      staffID,
		CustomerID:   customerID,
		InventoryIDs: inventoryIDs,
		RentalIDs:    resp.RentalIDs,
		InvoiceID:    result.InvoiceID,
		CreatedAt:    s.now().UTC(),
	})
	s.invalidateStore(ctx, storeID)

	return result, nil
}

// RecentCheckouts lists the latest journaled checkouts of a store
func (s *CheckoutService) RecentCheckouts(ctx context.Context, storeID string, limit int) ([]domain.CheckoutRecord, error) {
	id, err := domain.ParseID(storeID, "Store ID")
	if err != nil {
		return nil, err
	}
	if s.journal == nil {
		return []domain.CheckoutRecord{}, nil
	}
	if limit <= 0 || limit > maxLimit {
		limit = lookupLimit
	}

	records, err := s.journal.ListRecent(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent checkouts: %w", err)
	}
	return records, nil
}

// loadSnapshot fetches open rentals and per-film inventory concurrently
func (s *CheckoutService) loadSnapshot(ctx context.Context, storeID int64, filmIDs []int64) (
	[]domain.OpenRental, map[int64][]domain.InventoryUnit, error) {

	g, gctx := errgroup.WithContext(ctx)

	var rentals []ports.BackendRental
	g.Go(func() error {
		var err error
		rentals, err = s.backend.ListOpenRentals(gctx, storeID, maxLimit)
		if err != nil {
			return fmt.Errorf("failed to load open rentals: %w", err)
		}
		return nil
	})

	inventories := make([][]ports.BackendInventory, len(filmIDs))
	for i, filmID := range filmIDs {
		g.Go(func() error {
			units, err := s.backend.ListFilmInventory(gctx, filmID, maxLimit)
			if err != nil {
				return fmt.Errorf("failed to load inventory for film %d: %w", filmID, err)
			}
			inventories[i] = units
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	open := make([]domain.OpenRental, 0, len(rentals))
	for _, r := range rentals {
		open = append(open, domain.OpenRental{
			RentalID:    r.RentalID,
			InventoryID: r.InventoryID,
			CustomerID:  r.CustomerID,
			RentalDate:  r.RentalDate,
		})
	}

	byFilm := make(map[int64][]domain.InventoryUnit, len(filmIDs))
	for i, filmID := range filmIDs {
		units := make([]domain.InventoryUnit, 0, len(inventories[i]))
		for _, inv := range inventories[i] {
			units = append(units, domain.InventoryUnit{
				InventoryID: inv.InventoryID,
				FilmID:      inv.FilmID,
				StoreID:     inv.StoreID,
			})
		}
		byFilm[filmID] = units
	}

	return open, byFilm, nil
}

func (s *CheckoutService) recordJournal(ctx context.Context, record *domain.CheckoutRecord) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(ctx, record); err != nil {
		s.logger.WarnContext(ctx, "failed to journal checkout",
			slog.String("invoice_id", record.InvoiceID),
			slog.String("error", err.Error()))
	}
}

func (s *CheckoutService) invalidateStore(ctx context.Context, storeID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, openRentalsKey(storeID)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate open rentals cache", slog.String("error", err.Error()))
	}
	if err := s.cache.DeletePattern(ctx, availabilityPattern(storeID)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate availability cache", slog.String("error", err.Error()))
	}
}

func toCartLines(items []ports.CartItem) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		filmID, err := domain.ParseID(item.FilmID, "Film ID")
		if err != nil {
			return nil, err
		}
		line := domain.CartLine{FilmID: filmID, Quantity: item.Quantity}
		if err := line.Validate(); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func hasQuantity(cart []domain.CartLine) bool {
	for _, line := range cart {
		if line.Quantity > 0 {
			return true
		}
	}
	return false
}
