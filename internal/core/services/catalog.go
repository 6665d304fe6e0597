// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// CatalogService serves stores, staff, customers and films, caching each
// lookup for a short time so typing in the search boxes stays cheap.
type CatalogService struct {
	backend ports.RentalBackend
	cache   ports.CacheRepository
	listTTL time.Duration
	logger  *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service. cache may be nil.
func NewCatalogService(backend ports.RentalBackend, cache ports.CacheRepository,
	listTTL time.Duration, logger *slog.Logger) *CatalogService {
	if listTTL <= 0 {
		listTTL = 5 * time.Minute
	}
	return &CatalogService{
		backend: backend,
		cache:   cache,
		listTTL: listTTL,
		logger:  logger.With(slog.String("service", "catalog")),
	}
}

// ListStores returns every store a shift can be opened at
func (s *CatalogService) ListStores(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	err := s.cached(ctx, storesKey(), &stores, s.listTTL, func() (interface{}, error) {
		records, err := s.backend.ListStores(ctx, maxLimit)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Store, 0, len(records))
		for _, r := range records {
			out = append(out, domain.Store{
				ID:    domain.FormatID(r.StoreID),
				Label: fmt.Sprintf("Store #%d", r.StoreID),
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// ListStaff returns active staff, optionally only those of one store
func (s *CatalogService) ListStaff(ctx context.Context, storeID string) ([]domain.Staff, error) {
	var filterStore string
	if strings.TrimSpace(storeID) != "" {
		id, err := domain.ParseID(storeID, "Store ID")
		if err != nil {
			return nil, err
		}
		filterStore = domain.FormatID(id)
	}

	var staff []domain.Staff
	err := s.cached(ctx, staffKey(), &staff, s.listTTL, func() (interface{}, error) {
		records, err := s.backend.ListStaff(ctx, maxLimit)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Staff, 0, len(records))
		for _, r := range records {
			if !r.Active {
				continue
			}
			out = append(out, domain.Staff{
				ID:      domain.FormatID(r.StaffID),
				Label:   domain.DisplayName(r.FirstName, r.LastName),
				StoreID: domain.FormatID(r.StoreID),
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	if filterStore == "" {
		return staff, nil
	}
	filtered := make([]domain.Staff, 0, len(staff))
	for _, member := range staff {
		if member.StoreID == filterStore {
			filtered = append(filtered, member)
		}
	}
	return filtered, nil
}

// LookupCustomers searches customers; a blank query lists the first page
func (s *CatalogService) LookupCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	normalized := strings.TrimSpace(query)

	var customers []domain.Customer
	err := s.cached(ctx, customersKey(normalized), &customers, lookupTTL, func() (interface{}, error) {
		if normalized == "" {
			records, err := s.backend.ListCustomers(ctx, lookupLimit)
			if err != nil {
				return nil, err
			}
			out := make([]domain.Customer, 0, len(records))
			for _, r := range records {
				out = append(out, domain.Customer{
					ID:    domain.FormatID(r.CustomerID),
					Name:  domain.DisplayName(r.FirstName, r.LastName),
					Phone: r.Email,
				})
			}
			return out, nil
		}

		matches, err := s.backend.LookupCustomers(ctx, normalized, lookupLimit)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Customer, 0, len(matches))
		for _, m := range matches {
			out = append(out, domain.Customer{
				ID:    domain.FormatID(m.CustomerID),
				Name:  m.Name,
				Phone: m.Email,
			})
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up customers: %w", err)
	}
	return customers, nil
}

// LookupFilms searches films by title; a blank query lists the first page
func (s *CatalogService) LookupFilms(ctx context.Context, query string) ([]domain.Film, error) {
	normalized := strings.TrimSpace(query)

	var films []domain.Film
	err := s.cached(ctx, filmsKey(normalized), &films, lookupTTL, func() (interface{}, error) {
		if normalized == "" {
			records, err := s.backend.ListFilms(ctx, lookupLimit)
			if err != nil {
				return nil, err
			}
			out := make([]domain.Film, 0, len(records))
			for _, r := range records {
				out = append(out, domain.Film{ID: domain.FormatID(r.FilmID), Title: r.Title})
			}
			return out, nil
		}

		matches, err := s.backend.LookupFilms(ctx, normalized, lookupLimit)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Film, 0, len(matches))
		for _, m := range matches {
			out = append(out, domain.Film{ID: domain.FormatID(m.FilmID), Title: m.Title})
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up films: %w", err)
	}
	return films, nil
}

// FilmAvailability reports how many copies of a film a store can rent out
func (s *CatalogService) FilmAvailability(ctx context.Context, filmID, storeID string) (*domain.FilmAvailability, error) {
	parsedFilm, err := domain.ParseID(filmID, "Film ID")
	if err != nil {
		return nil, err
	}
	parsedStore, err := domain.ParseID(storeID, "Store ID")
	if err != nil {
		return nil, err
	}

	var availability domain.FilmAvailability
	err = s.cached(ctx, availabilityKey(parsedStore, parsedFilm), &availability, lookupTTL, func() (interface{}, error) {
		record, err := s.backend.GetFilmAvailability(ctx, parsedFilm, parsedStore)
		if err != nil {
			return nil, err
		}
		return domain.FilmAvailability{Available: record.Available, Total: record.Total}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get availability for film %d: %w", parsedFilm, err)
	}
	return &availability, nil
}

// cached reads through the cache when one is configured. Cache faults
// degrade to a direct fetch instead of failing the lookup.
func (s *CatalogService) cached(ctx context.Context, key string, dest interface{},
	ttl time.Duration, fetch func() (interface{}, error)) error {
	return readThrough(ctx, s.cache, s.logger, key, dest, ttl, fetch)
}
