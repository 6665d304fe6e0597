// internal/core/services/rentals.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// fetchConcurrency bounds the per-rental invoice fan-out
const fetchConcurrency = 8

// RentalService lists, returns and settles rentals
type RentalService struct {
	backend ports.RentalBackend
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// Statically assert that *RentalService implements the RentalService interface.
var _ ports.RentalService = (*RentalService)(nil)

// NewRentalService creates a new rental service. cache may be nil.
func NewRentalService(backend ports.RentalBackend, cache ports.CacheRepository, logger *slog.Logger) *RentalService {
	return &RentalService{
		backend: backend,
		cache:   cache,
		logger:  logger.With(slog.String("service", "rentals")),
	}
}

// openRentalRow is the cached form of an open rental. Status is derived
// from Due on every read so cached rows turn late on time.
type openRentalRow struct {
	Rental domain.Rental `json:"rental"`
	Due    time.Time     `json:"due"`
}

// ListOpenRentals returns the store's unreturned rentals with their due date
// and status. Rentals whose invoice cannot be loaded are left out.
func (s *RentalService) ListOpenRentals(ctx context.Context, storeID string, now time.Time) ([]domain.Rental, error) {
	parsedStore, err := domain.ParseID(storeID, "Store ID")
	if err != nil {
		return nil, err
	}

	var rows []openRentalRow
	err = readThrough(ctx, s.cache, s.logger, openRentalsKey(parsedStore), &rows, lookupTTL,
		func() (interface{}, error) {
			return s.loadOpenRentals(ctx, parsedStore)
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list open rentals: %w", err)
	}

	rentals := make([]domain.Rental, 0, len(rows))
	for _, row := range rows {
		rental := row.Rental
		rental.Status = domain.RentalOpen
		if !row.Due.IsZero() {
			rental.Status = domain.RentalStatusAt(row.Due, now)
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}

// SearchOpenRentals narrows ListOpenRentals by id, film title or customer name
func (s *RentalService) SearchOpenRentals(ctx context.Context, storeID, query string, now time.Time) ([]domain.Rental, error) {
	rentals, err := s.ListOpenRentals(ctx, storeID, now)
	if err != nil {
		return nil, err
	}
	return domain.FilterRentals(rentals, query), nil
}

type rentalInvoice struct {
	rental  ports.BackendRental
	invoice *ports.BackendInvoice
}

func (s *RentalService) loadOpenRentals(ctx context.Context, storeID int64) ([]openRentalRow, error) {
	rentals, err := s.backend.ListOpenRentals(ctx, storeID, maxLimit)
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return []openRentalRow{}, nil
	}

	// Invoice failures only drop the affected rental, so this group never
	// returns an error and never cancels its siblings.
	results := make([]*rentalInvoice, len(rentals))
	var g errgroup.Group
	g.SetLimit(fetchConcurrency)
	for i, rental := range rentals {
		g.Go(func() error {
			invoice, err := s.backend.GetInvoice(ctx, rental.RentalID)
			if err != nil {
				s.logger.WarnContext(ctx, "dropping rental without invoice",
					slog.Int64("rental_id", rental.RentalID),
					slog.String("error", err.Error()))
				return nil
			}
			results[i] = &rentalInvoice{rental: rental, invoice: invoice}
			return nil
		})
	}
	_ = g.Wait()

	successful := make([]*rentalInvoice, 0, len(results))
	filmIDs := make([]int64, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		successful = append(successful, r)
		filmIDs = append(filmIDs, r.invoice.Film.FilmID)
	}
	if len(successful) == 0 {
		return []openRentalRow{}, nil
	}

	durations, err := s.filmDurations(ctx, filmIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]openRentalRow, 0, len(successful))
	for _, item := range successful {
		inv := item.invoice
		row := openRentalRow{
			Rental: domain.Rental{
				ID:           domain.FormatID(item.rental.RentalID),
				CustomerID:   domain.FormatID(item.rental.CustomerID),
				CustomerName: domain.DisplayName(inv.Customer.FirstName, inv.Customer.LastName),
				FilmID:       domain.FormatID(inv.Film.FilmID),
				FilmTitle:    inv.Film.Title,
				DueDate:      "-",
			},
		}
		if started, ok := domain.ParseRentalDate(item.rental.RentalDate); ok {
			row.Due = domain.DueDate(started, durations[inv.Film.FilmID])
			row.Rental.DueDate = domain.FormatDate(row.Due)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// filmDurations loads the rental duration of every distinct film. Missing
// or non-positive durations are left to DueDate's default.
func (s *RentalService) filmDurations(ctx context.Context, filmIDs []int64) (map[int64]int, error) {
	seen := make(map[int64]struct{}, len(filmIDs))
	durations := make(map[int64]int, len(filmIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, filmID := range filmIDs {
		if _, ok := seen[filmID]; ok {
			continue
		}
		seen[filmID] = struct{}{}
		g.Go(func() error {
			film, err := s.backend.GetFilm(gctx, filmID)
			if err != nil {
				return fmt.Errorf("failed to load film %d: %w", filmID, err)
			}
			mu.Lock()
			durations[filmID] = film.RentalDuration
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return durations, nil
}

// ReturnRentals marks rentals returned in a single batch call.
// Every id is validated before the backend is contacted.
func (s *RentalService) ReturnRentals(ctx context.Context, rentalIDs []string) (*domain.ReturnResult, error) {
	ids, err := domain.ParseIDs(rentalIDs, "Rental ID")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no rentals selected", domain.ErrInvalidArgument)
	}

	resp, err := s.backend.ReturnBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to return rentals: %w", err)
	}

	result := &domain.ReturnResult{
		Returned: domain.FormatIDs(resp.Updated),
		Skipped:  domain.FormatIDs(resp.Skipped),
	}

	s.logger.InfoContext(ctx, "rentals returned",
		slog.Int("returned", len(result.Returned)),
		slog.Int("skipped", len(result.Skipped)))

	s.invalidate(ctx, append(invoiceKeys(ids), openRentalsPattern(), anyAvailabilityPattern())...)
	return result, nil
}

// GetInvoice returns the invoice of a rental
func (s *RentalService) GetInvoice(ctx context.Context, rentalID string) (*domain.Invoice, error) {
	id, err := domain.ParseID(rentalID, "Rental ID")
	if err != nil {
		return nil, err
	}

	var invoice domain.Invoice
	err = readThrough(ctx, s.cache, s.logger, invoiceKey(id), &invoice, lookupTTL,
		func() (interface{}, error) {
			record, err := s.backend.GetInvoice(ctx, id)
			if err != nil {
				return nil, err
			}
			return toInvoice(record), nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice for rental %d: %w", id, err)
	}
	return &invoice, nil
}

// PayInvoice records a payment and returns the refreshed balance
func (s *RentalService) PayInvoice(ctx context.Context, input ports.PaymentInput) (*ports.PaymentResult, error) {
	rentalID, err := domain.ParseID(input.RentalID, "Rental ID")
	if err != nil {
		return nil, err
	}
	customerID, err := domain.ParseID(input.CustomerID, "Customer ID")
	if err != nil {
		return nil, err
	}
	staffID, err := domain.ParseID(input.StaffID, "Staff ID")
	if err != nil {
		return nil, err
	}
	if !input.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidArgument)
	}

	err = s.backend.CreatePayment(ctx, ports.PaymentRequest{
		CustomerID: customerID,
		StaffID:    staffID,
		RentalID:   rentalID,
		Amount:     input.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.InfoContext(ctx, "payment recorded",
		slog.Int64("rental_id", rentalID),
		slog.String("amount", input.Amount.StringFixed(2)))

	s.invalidate(ctx, invoiceKey(rentalID), openRentalsPattern())

	latest, err := s.backend.GetInvoice(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("payment recorded but invoice refresh failed: %w", err)
	}
	invoice := toInvoice(latest)
	return &ports.PaymentResult{Paid: invoice.Paid, Due: invoice.Due}, nil
}

func (s *RentalService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	for _, key := range keys {
		var err error
		if isPattern(key) {
			err = s.cache.DeletePattern(ctx, key)
		} else {
			err = s.cache.Delete(ctx, key)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate cache",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}
}

func toInvoice(record *ports.BackendInvoice) domain.Invoice {
	rentalID := domain.FormatID(record.Rental.RentalID)
	return domain.Invoice{
		ID:           rentalID,
		RentalID:     rentalID,
		Total:        record.Film.RentalRate,
		Paid:         record.Summary.TotalPaid,
		Due:          record.Summary.AmountDue,
		CustomerID:   domain.FormatID(record.Customer.CustomerID),
		CustomerName: domain.DisplayName(record.Customer.FirstName, record.Customer.LastName),
		FilmTitle:    record.Film.Title,
	}
}

func invoiceKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = invoiceKey(id)
	}
	return keys
}
