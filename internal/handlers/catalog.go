// internal/handlers/catalog.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/kasir-rental/internal/core/domain"
	"github.com/ammerola/kasir-rental/internal/core/ports"
)

// CatalogHandler serves the store, staff, customer and film lookups
type CatalogHandler struct {
	catalog ports.CatalogService
	shifts  ports.ShiftService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog ports.CatalogService, shifts ports.ShiftService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		shifts:  shifts,
		logger:  logger.With(slog.String("handler", "catalog")),
	}
}

// ListStores handles GET /api/v1/stores
func (h *CatalogHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.catalog.ListStores(r.Context())
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, stores)
}

// ListStaff handles GET /api/v1/staff?store_id=
func (h *CatalogHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.catalog.ListStaff(r.Context(), strings.TrimSpace(r.URL.Query().Get("store_id")))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, staff)
}

// LookupCustomers handles GET /api/v1/customers?q=
func (h *CatalogHandler) LookupCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.catalog.LookupCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, customers)
}

// LookupFilms handles GET /api/v1/films?q=
func (h *CatalogHandler) LookupFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.catalog.LookupFilms(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, films)
}

// FilmAvailability handles GET /api/v1/films/{id}/availability. An explicit
// store_id wins over the store of the terminal's shift.
func (h *CatalogHandler) FilmAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID := strings.TrimSpace(r.URL.Query().Get("store_id"))
	if storeID == "" {
		shift, err := currentShift(ctx, h.shifts, terminalID(r))
		if err != nil {
			if errors.Is(err, domain.ErrNoActiveShift) {
				respondError(w, r, h.logger, http.StatusBadRequest, "store_id is required without an active shift")
				return
			}
			respondServiceError(w, r, h.logger, err)
			return
		}
		storeID = shift.StoreID
	}

	availability, err := h.catalog.FilmAvailability(ctx, r.PathValue("id"), storeID)
	if err != nil {
		respondServiceError(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, availability)
}
